package fence

import (
	"context"
	"fmt"

	"github.com/datavet/validation-algorithms/model"
	"github.com/datavet/validation-algorithms/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Scanner applies the quartile fence to series. It holds no state besides the
// multiplier, every scan is independent and deterministic for its input.
type Scanner struct {
	multiplier float64
}

func NewScanner(multiplier float64) *Scanner {
	return &Scanner{
		multiplier: multiplier,
	}
}

func NewDefaultScanner() *Scanner {
	return NewScanner(DefaultMultiplier)
}

// Scan fences a single series and flags every value strictly outside the
// limits. The original, unsorted series is scanned so the reported indexes
// point back at the source records. Values exactly on a limit are in range.
func (s *Scanner) Scan(ctx context.Context, values model.Series) (*model.OutlierReport, error) {
	quartiles, err := Quartiles(values)
	if err != nil {
		return nil, err
	}

	bounds, err := NewFence(quartiles, s.multiplier)
	if err != nil {
		return nil, err
	}

	outliers := []model.Outlier{}
	for i, v := range values {
		if v < bounds.Lower || v > bounds.Upper {
			outliers = append(outliers, model.Outlier{
				Index: i,
				Value: v,
			})
		}
	}

	report := &model.OutlierReport{
		Quartiles:  quartiles,
		Fence:      bounds,
		Multiplier: s.multiplier,
		SampleSize: len(values),
		Outliers:   outliers,
		Profile:    Profile(values),
	}

	if len(outliers) > 0 {
		logger := utils.GetLogger(ctx)
		logger.Info("found outliers", zap.Int("count", len(outliers)),
			zap.Float64("lower", bounds.Lower), zap.Float64("upper", bounds.Upper))
	}

	return report, nil
}

// ScanGroups fences each group independently from that group's own data only,
// pooling heterogeneous groups under one fence would be statistically invalid.
// Groups run concurrently, the result keeps the input group order.
func (s *Scanner) ScanGroups(ctx context.Context, groups []model.Group) (*model.GroupReport, error) {
	entries := make([]model.GroupEntry, len(groups))

	eg, egCtx := errgroup.WithContext(ctx)
	for i := range groups {
		i, group := i, groups[i]
		eg.Go(func() error {
			report, err := s.Scan(egCtx, group.Values)
			if err != nil {
				return fmt.Errorf("group %q: %w", group.Key, err)
			}
			entries[i] = model.GroupEntry{
				Key:    group.Key,
				Report: report,
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &model.GroupReport{Entries: entries}, nil
}
