package transcript

// scoreRule contributes a fixed weight to the zone quality score when its
// predicate matches a segment.
type scoreRule struct {
	name   string
	weight float64
	match  func(s segmentStats) bool
}

var scoreRules = []scoreRule{
	{"sparse_content", -2.0, func(s segmentStats) bool {
		return s.duration >= 5.5 && (len(s.words) <= 6 || s.charLen <= 22)
	}},
	{"dragging", -2.5, func(s segmentStats) bool {
		return s.duration >= 7.0 && s.wps < 1.0
	}},
	{"slow_sparse", -1.2, func(s segmentStats) bool {
		return s.duration >= 4.5 && s.wps <= 0.9 && s.cps <= 6.0
	}},
	{"flat_duration", -1.5, func(s segmentStats) bool {
		return isFlatDuration(s.duration)
	}},
	{"run_on", -2.5, func(s segmentStats) bool {
		return len(s.words) >= 14 && s.endPunct == 0
	}},
	{"very_long_text", -3.0, func(s segmentStats) bool {
		return len(s.text) > 120
	}},
	{"long_text", -1.5, func(s segmentStats) bool {
		return len(s.text) > 90 && len(s.text) <= 120
	}},
	{"longish_text", -0.8, func(s segmentStats) bool {
		return len(s.text) > 60 && len(s.text) <= 90
	}},
	{"very_fast", -1.2, func(s segmentStats) bool {
		return s.cps > 28
	}},
	{"fast", -0.6, func(s segmentStats) bool {
		return s.cps > 22 && s.cps <= 28
	}},
	{"comfortable_duration", 0.2, func(s segmentStats) bool {
		return s.duration >= 0.7 && s.duration <= 4.0
	}},
	{"mumble", -0.6, func(s segmentStats) bool {
		return s.endPunct == 0 && !s.hasUpper() &&
			s.duration >= 1.5 && s.duration <= 5.0 && s.mumbly()
	}},
}

// endPunctReward is the score granted per sentence-ending punctuation mark.
const endPunctReward = 0.7

// emptyZoneScore makes an empty candidate lose to anything.
const emptyZoneScore = -1e9

// QualityScore rates a block of segments. Sentence-ending punctuation earns
// points; run-ons, wall-of-text segments, implausible pacing, and flat
// timing lose them. Higher is better. Scores only order candidates for the
// same zone; they carry no absolute meaning.
func QualityScore(segs []Segment) float64 {
	if len(segs) == 0 {
		return emptyZoneScore
	}
	score := 0.0
	for _, seg := range segs {
		stats := statsFor(seg)
		score += endPunctReward * float64(stats.endPunct)
		for _, rule := range scoreRules {
			if rule.match(stats) {
				score += rule.weight
			}
		}
	}
	return score
}
