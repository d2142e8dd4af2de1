package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/datavet/validation-algorithms/common"
	"github.com/datavet/validation-algorithms/fence"
	"github.com/datavet/validation-algorithms/model"
	"github.com/datavet/validation-algorithms/utils"
	"go.uber.org/zap"
)

type Option func(*options)

type options struct {
	multiplier  float64
	description string
}

func defaultOptions() *options {
	return &options{
		multiplier: fence.DefaultMultiplier,
	}
}

// WithMultiplier overrides the fence width. Validation of the value happens
// inside the scan, a bad multiplier surfaces as ErrorInvalidMultiplier.
func WithMultiplier(multiplier float64) Option {
	return func(o *options) {
		o.multiplier = multiplier
	}
}

func WithDescription(description string) Option {
	return func(o *options) {
		o.description = description
	}
}

// Outliers checks a dataset against the quartile fence. It returns nil when
// no value anywhere falls outside its fence, and a *ValidationError listing
// one Deviation per flagged value otherwise. Precondition failures
// (insufficient data, bad multiplier, non numeric values) are returned as-is,
// they are never folded into a ValidationError.
func Outliers(ctx context.Context, dataset model.Dataset, opts ...Option) (err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Outliers recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.String("dataset", dataset.DebugString()))
			err = common.ErrorInvalidValue
		}
	}()

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	scanner := fence.NewScanner(o.multiplier)

	switch dataset.Kind {
	case model.FlatDataset:
		report, scanErr := scanner.Scan(ctx, dataset.Values)
		if scanErr != nil {
			return scanErr
		}
		if !report.HasOutliers() {
			return nil
		}
		return &ValidationError{
			description: o.description,
			differences: deviations("", report),
			diagnostics: []groupDiagnostic{{report: report}},
		}

	case model.GroupedDataset:
		groupReport, scanErr := scanner.ScanGroups(ctx, dataset.Groups)
		if scanErr != nil {
			return scanErr
		}
		if !groupReport.HasOutliers() {
			return nil
		}
		verr := &ValidationError{description: o.description, grouped: true}
		for _, entry := range groupReport.Entries {
			if !entry.Report.HasOutliers() {
				continue
			}
			verr.differences = append(verr.differences, deviations(entry.Key, entry.Report)...)
			verr.diagnostics = append(verr.diagnostics, groupDiagnostic{
				key:    entry.Key,
				report: entry.Report,
			})
		}
		return verr

	default:
		return fmt.Errorf("%w: unknown dataset kind %v", common.ErrorInvalidValue, dataset.Kind)
	}
}

// Valid reports whether the dataset passes. Precondition errors also count
// as not valid.
func Valid(ctx context.Context, dataset model.Dataset, opts ...Option) bool {
	return Outliers(ctx, dataset, opts...) == nil
}

// deviations converts a report's outliers into difference objects, keeping
// the original series order. The violated limit picks the deviation sign:
// past the upper limit is positive, under the lower limit negative.
func deviations(groupKey string, report *model.OutlierReport) []model.Deviation {
	res := make([]model.Deviation, 0, len(report.Outliers))
	for _, outlier := range report.Outliers {
		limit := report.Fence.Lower
		if outlier.Value > report.Fence.Upper {
			limit = report.Fence.Upper
		}
		res = append(res, model.Deviation{
			GroupKey: groupKey,
			Index:    outlier.Index,
			Value:    outlier.Value,
			Limit:    limit,
			Amount:   outlier.Value - limit,
		})
	}
	return res
}

type groupDiagnostic struct {
	key    string
	report *model.OutlierReport
}

// ValidationError is the structured failure object handed back to the outer
// framework. Differences keeps dataset order (group insertion order, then
// series order inside each group) so acceptance filtering stays deterministic.
type ValidationError struct {
	description string
	grouped     bool
	differences []model.Deviation
	diagnostics []groupDiagnostic
}

func (e *ValidationError) Differences() []model.Deviation {
	return e.differences
}

func (e *ValidationError) Description() string {
	return e.description
}

func (e *ValidationError) Grouped() bool {
	return e.grouped
}

func (e *ValidationError) Error() string {
	var b strings.Builder

	description := e.description
	if description == "" {
		description = "values exceed quartile fence"
	}
	fmt.Fprintf(&b, "%s (%d difference(s)):", description, len(e.differences))

	for _, diag := range e.diagnostics {
		report := diag.report
		b.WriteString("\n ")
		if diag.key != "" {
			fmt.Fprintf(&b, " group %q:", diag.key)
		}
		fmt.Fprintf(&b, " Q1=%s Q3=%s IQR=%s fence=[%s, %s]",
			utils.FormatValue(report.Quartiles.Q1),
			utils.FormatValue(report.Quartiles.Q3),
			utils.FormatValue(report.Quartiles.IQR()),
			utils.FormatValue(report.Fence.Lower),
			utils.FormatValue(report.Fence.Upper))
	}

	for _, d := range e.differences {
		b.WriteString("\n  ")
		if d.GroupKey != "" {
			fmt.Fprintf(&b, "%q: ", d.GroupKey)
		}
		fmt.Fprintf(&b, "%v, value %s at index %d",
			d, utils.FormatValue(d.Value), d.Index)
	}

	return b.String()
}
