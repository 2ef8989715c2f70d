package market

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verityai/capital-recommender/internal/refdata"
)

// AdjustTimeline shifts an "N-M weeks" approval timeline for market
// conditions: an aggressive lender in a hot sector moves faster, a selective
// lender or a cold sector moves slower. Timelines that do not parse as a
// week range pass through unchanged.
func AdjustTimeline(timeline string, appetite refdata.Appetite, status SectorStatus) string {
	minWeeks, maxWeeks, ok := ParseWeekRange(timeline)
	if !ok {
		return timeline
	}

	switch {
	case appetite == refdata.AppetiteAggressive && status == StatusHot:
		minWeeks--
		if minWeeks < 1 {
			minWeeks = 1
		}
		maxWeeks -= 2
		if maxWeeks < minWeeks {
			maxWeeks = minWeeks
		}
	case appetite == refdata.AppetiteSelective || status == StatusCold:
		minWeeks++
		maxWeeks += 3
	}

	return fmt.Sprintf("%d-%d weeks", minWeeks, maxWeeks)
}

// ParseWeekRange parses timelines of the form "2-4 weeks". The third return
// is false when the string does not match.
func ParseWeekRange(timeline string) (minWeeks, maxWeeks int, ok bool) {
	if !strings.Contains(timeline, "week") {
		return 0, 0, false
	}

	parts := strings.SplitN(timeline, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}

	hiFields := strings.Fields(parts[1])
	if len(hiFields) == 0 {
		return 0, 0, false
	}
	hi, err := strconv.Atoi(hiFields[0])
	if err != nil {
		return 0, 0, false
	}

	return lo, hi, true
}
