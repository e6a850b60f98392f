package chainparams

// SpacingSchedule gives the target block interval in seconds for each phase
// of the proof-of-work to proof-of-stake transition.
type SpacingSchedule struct {
	// Base applies below both thresholds (pure proof-of-work).
	Base int64
	// PostPoW applies once height is past the last proof-of-work block.
	PostPoW int64
	// DualPhase applies past the first proof-of-stake block while
	// proof-of-work blocks are still accepted.
	DualPhase int64
}

// At returns the spacing at height. The dual phase window is empty when
// startPoS >= lastPoW.
func (s SpacingSchedule) At(height, lastPoW, startPoS int32) int64 {
	spacing := s.Base
	if height > lastPoW {
		spacing = s.PostPoW
	}
	if height > startPoS && height <= lastPoW {
		spacing = s.DualPhase
	}
	return spacing
}

// Timespan is the retarget timespan for a spacing.
func Timespan(spacing int64) int64 {
	return 10 * spacing
}

// FlatSpacing is a schedule without phase changes.
func FlatSpacing(spacing int64) SpacingSchedule {
	return SpacingSchedule{Base: spacing, PostPoW: spacing, DualPhase: spacing}
}

// resolveSpacing freezes the schedule at the height the node starts with.
func (p *ChainParams) resolveSpacing(bestHeight int32) {
	p.TargetSpacing = p.SpacingAt(bestHeight)
	p.TargetTimespan = Timespan(p.TargetSpacing)
}
