package models

import (
	"fmt"
	"time"
)

// LoadBalancer identifies one access-log producing load balancer.
type LoadBalancer string

const (
	LoadBalancerExternal LoadBalancer = "external"
	LoadBalancerInternal LoadBalancer = "internal"
)

// ALBLayout describes where a load balancer account writes its access logs.
type ALBLayout struct {
	AccountID  string
	Region     string
	ExternalLB string
	InternalLB string
}

// ALBSelection picks which load balancers a run reads.
type ALBSelection struct {
	External bool
	Internal bool
}

func (s ALBSelection) LoadBalancers() []LoadBalancer {
	var lbs []LoadBalancer
	if s.External {
		lbs = append(lbs, LoadBalancerExternal)
	}
	if s.Internal {
		lbs = append(lbs, LoadBalancerInternal)
	}
	return lbs
}

// Suffix renders the selection as it appears in output file names.
func (s ALBSelection) Suffix() string {
	return fmt.Sprintf("%t_%t", s.External, s.Internal)
}

// DayPrefix is the object key prefix holding one day of logs for lb.
func (l ALBLayout) DayPrefix(day time.Time, lb LoadBalancer) string {
	name := l.ExternalLB
	if lb == LoadBalancerInternal {
		name = l.InternalLB
	}
	day = day.UTC()
	return fmt.Sprintf("AWSLogs/%s/elasticloadbalancing/%s/%04d/%02d/%02d/%s_elasticloadbalancing_%s_%s.",
		l.AccountID, l.Region, day.Year(), int(day.Month()), day.Day(), l.AccountID, l.Region, name)
}
