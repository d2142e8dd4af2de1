package model

import (
	"testing"

	"github.com/datavet/validation-algorithms/common"
	"github.com/stretchr/testify/require"
)

func TestFromSeries(t *testing.T) {
	require := require.New(t)

	dataset := FromSeries([]float64{1, 2, 3})
	require.Equal(FlatDataset, dataset.Kind)
	require.False(dataset.IsEmpty())
	require.Contains(dataset.DebugString(), "flat")
}

func TestFromGroups(t *testing.T) {
	require := require.New(t)

	dataset, err := FromGroups([]Group{
		{Key: "A", Values: Series{1, 2}},
		{Key: "B", Values: Series{3, 4}},
	})
	require.NoError(err)
	require.Equal(GroupedDataset, dataset.Kind)
	require.Equal("A", dataset.Groups[0].Key)
	require.Equal("B", dataset.Groups[1].Key)

	_, err = FromGroups([]Group{
		{Key: "A", Values: Series{1, 2}},
		{Key: "A", Values: Series{3, 4}},
	})
	require.ErrorIs(err, common.ErrorDuplicateGroupKey)
}

func TestDatasetIsEmpty(t *testing.T) {
	require := require.New(t)

	var nilDataset *Dataset
	require.True(nilDataset.IsEmpty())
	require.True((&Dataset{}).IsEmpty())

	empty := FromSeries(nil)
	require.True(empty.IsEmpty())
}

func TestQuartilesIQR(t *testing.T) {
	require := require.New(t)
	require.Equal(10.0, Quartiles{Q1: 45, Q3: 55}.IQR())
	require.Equal(0.0, Quartiles{Q1: 7, Q3: 7}.IQR())
}

func TestDeviationString(t *testing.T) {
	require := require.New(t)
	require.Equal("Deviation(+10, 77)", Deviation{Amount: 10, Limit: 77}.String())
	require.Equal("Deviation(-2, 62)", Deviation{Amount: -2, Limit: 62}.String())
	require.Equal("Deviation(+2.1875, 34.8125)", Deviation{Amount: 2.1875, Limit: 34.8125}.String())
}

func TestReportHasOutliers(t *testing.T) {
	require := require.New(t)

	var nilReport *OutlierReport
	require.False(nilReport.HasOutliers())
	require.False((&OutlierReport{Outliers: []Outlier{}}).HasOutliers())
	require.True((&OutlierReport{Outliers: []Outlier{{Index: 0, Value: 1}}}).HasOutliers())

	group := &GroupReport{Entries: []GroupEntry{
		{Key: "A", Report: &OutlierReport{Outliers: []Outlier{}}},
		{Key: "B", Report: &OutlierReport{Outliers: []Outlier{{Index: 2, Value: 60}}}},
	}}
	require.True(group.HasOutliers())
	require.Equal(1, group.OutlierCount())
}
