package model

import (
	"fmt"

	"github.com/datavet/validation-algorithms/common"
)

type DatasetKind int

const (
	FlatDataset    DatasetKind = 1
	GroupedDataset DatasetKind = 2
)

// Series is an ordered sequence of values. The original order is kept so
// flagged values can be mapped back to their source records.
type Series []float64

// Group pairs a group key with its own series. Each group is fenced from its
// own data only, groups are never pooled together.
type Group struct {
	Key    string
	Values Series
}

// Dataset is the tagged input variant: either one flat series or an ordered
// list of keyed groups. Dispatch on Kind, the zero value is not usable.
type Dataset struct {
	Kind   DatasetKind
	Values Series
	Groups []Group
}

func FromSeries(values []float64) Dataset {
	return Dataset{
		Kind:   FlatDataset,
		Values: values,
	}
}

// FromGroups keeps the given group order, report order follows it.
func FromGroups(groups []Group) (Dataset, error) {
	seen := make(map[string]bool, len(groups))
	for _, group := range groups {
		if seen[group.Key] {
			return Dataset{}, fmt.Errorf("%w: %q", common.ErrorDuplicateGroupKey, group.Key)
		}
		seen[group.Key] = true
	}
	return Dataset{
		Kind:   GroupedDataset,
		Groups: groups,
	}, nil
}

func (d *Dataset) IsEmpty() bool {
	if d == nil {
		return true
	}
	switch d.Kind {
	case FlatDataset:
		return len(d.Values) == 0
	case GroupedDataset:
		return len(d.Groups) == 0
	}
	return true
}

func (d *Dataset) DebugString() string {
	if d.Kind == GroupedDataset {
		return fmt.Sprintf("kind: grouped, groupCount: %v", len(d.Groups))
	}
	return fmt.Sprintf("kind: flat, valueCount: %v", len(d.Values))
}
