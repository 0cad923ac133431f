package differ

import (
	"github.com/aleister1102/rtfcompare/internal/common"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/mem"
)

// SizeGuard bounds worst-case matcher latency by rejecting inputs whose
// token counts exceed a configured ceiling. LCS-family algorithms degrade
// to O(N·(N+M)) on inputs with no common tokens, so the cap is what turns
// the caller's timeout budget into a hard guarantee. It also refuses to
// start when available system memory is below a configured floor.
type SizeGuard struct {
	maxTokens       int
	minFreeMemoryMB int
	logger          zerolog.Logger
}

// NewSizeGuard creates a new size guard. A non-positive maxTokens disables
// the token ceiling; a non-positive minFreeMemoryMB disables the memory check.
func NewSizeGuard(maxTokens, minFreeMemoryMB int, logger zerolog.Logger) *SizeGuard {
	return &SizeGuard{
		maxTokens:       maxTokens,
		minFreeMemoryMB: minFreeMemoryMB,
		logger:          logger.With().Str("component", "SizeGuard").Logger(),
	}
}

// Check validates token counts against the ceiling and verifies memory
// headroom. Failures wrap common.ErrContentTooLarge so callers can surface
// a distinct "input too large for diffing" message.
func (sg *SizeGuard) Check(sourceTokens, comparisonTokens int) error {
	if sg.maxTokens > 0 && (sourceTokens > sg.maxTokens || comparisonTokens > sg.maxTokens) {
		sg.logger.Warn().
			Int("source_tokens", sourceTokens).
			Int("comparison_tokens", comparisonTokens).
			Int("max_tokens", sg.maxTokens).
			Msg("Rejecting comparison: token count exceeds ceiling")
		return common.WrapErrorf(common.ErrContentTooLarge,
			"token count exceeds ceiling of %d (source: %d, comparison: %d)",
			sg.maxTokens, sourceTokens, comparisonTokens)
	}

	if sg.minFreeMemoryMB > 0 {
		if err := sg.checkMemoryHeadroom(); err != nil {
			return err
		}
	}

	return nil
}

// checkMemoryHeadroom compares available system memory to the floor
func (sg *SizeGuard) checkMemoryHeadroom() error {
	vm, err := mem.VirtualMemory()
	if err != nil {
		// Cannot read memory stats; proceed rather than fail the comparison
		sg.logger.Debug().Err(err).Msg("Failed to read virtual memory stats")
		return nil
	}

	availableMB := int(vm.Available / (1024 * 1024))
	if availableMB < sg.minFreeMemoryMB {
		sg.logger.Warn().
			Int("available_mb", availableMB).
			Int("min_free_mb", sg.minFreeMemoryMB).
			Msg("Rejecting comparison: insufficient memory headroom")
		return common.WrapErrorf(common.ErrContentTooLarge,
			"insufficient memory headroom (%dMB available, %dMB required)",
			availableMB, sg.minFreeMemoryMB)
	}

	return nil
}
