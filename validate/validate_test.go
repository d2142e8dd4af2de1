package validate

import (
	"context"
	"testing"

	"github.com/datavet/validation-algorithms/common"
	"github.com/datavet/validation-algorithms/model"
	"github.com/stretchr/testify/require"
)

func TestOutliersFlatPass(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	err := Outliers(ctx, model.FromSeries([]float64{12, 5, 8, 5, 7, 15}))
	require.NoError(err)
}

func TestOutliersFlatFailure(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	err := Outliers(ctx, model.FromSeries([]float64{54, 44, 42, 46, 87, 48, 56, 52}))
	require.Error(err)

	verr, ok := err.(*ValidationError)
	require.True(ok)
	require.False(verr.Grouped())
	require.Equal([]model.Deviation{
		{Index: 4, Value: 87, Limit: 77, Amount: 10},
	}, verr.Differences())

	msg := verr.Error()
	require.Contains(msg, "Q1=45")
	require.Contains(msg, "Q3=55")
	require.Contains(msg, "fence=[23, 77]")
	require.Contains(msg, "index 4")
	require.Contains(msg, "Deviation(+10, 77)")
}

func TestOutliersGrouped(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	dataset, err := model.FromGroups([]model.Group{
		{Key: "A", Values: model.Series{54, 44, 42, 46, 87, 48, 56, 52}},
		{Key: "B", Values: model.Series{87, 83, 60, 85, 97, 91, 95, 93}},
	})
	require.NoError(err)

	err = Outliers(ctx, dataset)
	require.Error(err)

	verr, ok := err.(*ValidationError)
	require.True(ok)
	require.True(verr.Grouped())

	// Group insertion order, then series order. B is fenced independently:
	// Q1=84, Q3=94, lower limit 62, so 60 lands 2 under it.
	require.Equal([]model.Deviation{
		{GroupKey: "A", Index: 4, Value: 87, Limit: 77, Amount: 10},
		{GroupKey: "B", Index: 2, Value: 60, Limit: 62, Amount: -2},
	}, verr.Differences())

	msg := verr.Error()
	require.Contains(msg, `group "A"`)
	require.Contains(msg, `group "B"`)
	require.Contains(msg, "Deviation(-2, 62)")
}

func TestOutliersGroupedPass(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	dataset, err := model.FromGroups([]model.Group{
		{Key: "A", Values: model.Series{12, 5, 8, 5, 7, 15}},
		{Key: "B", Values: model.Series{83, 75, 78, 76, 89, 81}},
	})
	require.NoError(err)
	require.NoError(Outliers(ctx, dataset))
}

func TestOutliersPropagatesPreconditionErrors(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	// Precondition failures are not validation failures.
	err := Outliers(ctx, model.FromSeries([]float64{5}))
	require.ErrorIs(err, common.ErrorInsufficientData)
	_, ok := err.(*ValidationError)
	require.False(ok)

	err = Outliers(ctx, model.FromSeries([]float64{1, 2, 3}), WithMultiplier(-1))
	require.ErrorIs(err, common.ErrorInvalidMultiplier)

	dataset, err := model.FromGroups([]model.Group{
		{Key: "A", Values: model.Series{1, 2, 3}},
		{Key: "B", Values: model.Series{7}},
	})
	require.NoError(err)
	err = Outliers(ctx, dataset)
	require.ErrorIs(err, common.ErrorInsufficientData)
}

func TestOutliersUnknownDatasetKind(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	err := Outliers(ctx, model.Dataset{})
	require.ErrorIs(err, common.ErrorInvalidValue)
}

func TestOutliersWithMultiplier(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	data := model.FromSeries([]float64{54, 44, 42, 46, 87, 48, 56, 52})

	// A wide enough fence excuses 87: Q3 + 10*IQR = 155.
	require.NoError(Outliers(ctx, data, WithMultiplier(10)))
	require.Error(Outliers(ctx, data, WithMultiplier(2.2)))
}

func TestOutliersWithDescription(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	err := Outliers(ctx, model.FromSeries([]float64{54, 44, 42, 46, 87, 48, 56, 52}),
		WithDescription("response times within expected range"))
	require.Error(err)

	verr := err.(*ValidationError)
	require.Equal("response times within expected range", verr.Description())
	require.Contains(verr.Error(), "response times within expected range")
}

func TestValid(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	require.True(Valid(ctx, model.FromSeries([]float64{10, 10, 10, 10})))
	require.False(Valid(ctx, model.FromSeries([]float64{54, 44, 42, 46, 87, 48, 56, 52})))
	require.False(Valid(ctx, model.FromSeries([]float64{5})))
}
