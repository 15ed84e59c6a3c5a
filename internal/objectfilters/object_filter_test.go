package objectfilters

import (
	"context"
	"testing"
	"time"

	"alb-analytics/internal/models"
	"alb-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(capture string) models.LogObjectKey {
	return models.LogObjectKey("AWSLogs/1/elasticloadbalancing/r/2023/05/01/1_elasticloadbalancing_r_app.lb.abc_" + capture + "_10.0.0.1_x.log.gz")
}

func window(t *testing.T, start, end time.Time) models.TimeWindow {
	t.Helper()
	w, err := models.NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestObjectFilter_Select_StrictlyInsideWindow(t *testing.T) {
	t.Parallel()

	filter := NewObjectFilter()
	w := window(t,
		time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2023, 5, 1, 13, 0, 0, 0, time.UTC))

	keys := []models.LogObjectKey{
		key("20230501T1155Z"),
		key("20230501T1200Z"), // equal to start
		key("20230501T1205Z"),
		key("20230501T1255Z"),
		key("20230501T1300Z"), // equal to end
		key("20230501T1305Z"),
	}

	selection, err := filter.Select(context.Background(), keys, w)
	require.NoError(t, err)
	assert.Equal(t, []models.LogObjectKey{key("20230501T1205Z"), key("20230501T1255Z")}, selection.Keys)
	assert.Empty(t, selection.Malformed)
}

func TestObjectFilter_Select_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	filter := NewObjectFilter()
	w := window(t,
		time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC))

	keys := []models.LogObjectKey{key("20230501T2300Z"), key("20230501T0100Z"), key("20230501T1200Z")}

	selection, err := filter.Select(context.Background(), keys, w)
	require.NoError(t, err)
	assert.Equal(t, keys, selection.Keys)
}

func TestObjectFilter_Select_SkipsMalformedKeys(t *testing.T) {
	t.Parallel()

	filter := NewObjectFilter()
	w := window(t,
		time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC))

	keys := []models.LogObjectKey{"broken.log.gz", key("20230501T0100Z"), "x_20231340T0000Z_y"}

	selection, err := filter.Select(context.Background(), keys, w)
	require.NoError(t, err)
	assert.Equal(t, []models.LogObjectKey{key("20230501T0100Z")}, selection.Keys)
	assert.Equal(t, []models.LogObjectKey{"broken.log.gz", "x_20231340T0000Z_y"}, selection.Malformed)
}

func TestObjectFilter_Select_NoObjectsInWindow(t *testing.T) {
	t.Parallel()

	filter := NewObjectFilter()
	w := window(t,
		time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2023, 5, 1, 13, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		keys []models.LogObjectKey
	}{
		{name: "no keys", keys: nil},
		{name: "only boundary keys", keys: []models.LogObjectKey{key("20230501T1200Z"), key("20230501T1300Z")}},
		{name: "only malformed keys", keys: []models.LogObjectKey{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			selection, err := filter.Select(context.Background(), tt.keys, w)
			require.Error(t, err)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, codeNoObjectsInWindow, svcErr.Code)
			assert.True(t, svcErr.IsNotFound())

			require.NotNil(t, selection)
			assert.Empty(t, selection.Keys)
		})
	}
}
