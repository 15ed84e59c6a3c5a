package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

const (
	// TagLoadBalancer accepts a load balancer name as it appears in access log
	// object keys, e.g. app.api-prod-elb.
	TagLoadBalancer = "lbname"
	// TagRegion accepts a cloud region such as ap-northeast-1.
	TagRegion = "region"
)

var (
	loadBalancerPattern = regexp.MustCompile(`^(app|net)\.[A-Za-z0-9][A-Za-z0-9-]*$`)
	regionPattern       = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-\d+$`)
)

// New creates a validator with the load balancer and region tags registered.
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagLoadBalancer, func(fl validator.FieldLevel) bool {
		return loadBalancerPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation(TagRegion, func(fl validator.FieldLevel) bool {
		return regionPattern.MatchString(fl.Field().String())
	})
	return v
}
