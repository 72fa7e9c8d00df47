package cli

import (
	"fmt"
	"strings"

	"github.com/matzehuels/planforge/pkg/evaluate"
	"github.com/matzehuels/planforge/pkg/plan"
)

// printScores prints the per-dimension score breakdown followed by the
// weighted total.
func printScores(scores map[evaluate.Dimension]evaluate.Result) {
	for _, dim := range evaluate.Dimensions {
		result := scores[dim]
		label := strings.ReplaceAll(string(dim), "_", " ")
		bar := scoreBar(result.Score)
		fmt.Printf("  %-18s %s %s\n",
			StyleDim.Render(label),
			bar,
			StyleNumber.Render(fmt.Sprintf("%.3f", result.Score)))
	}
	total := scores[evaluate.Total]
	fmt.Printf("  %-18s      %s\n",
		StyleTitle.Render("total"),
		StyleHighlight.Render(fmt.Sprintf("%.3f", total.Weighted)))
}

// scoreBar renders a ten-segment bar for a score in [0, 1]. Scores above
// 1 (some dimensions award bonuses) fill the whole bar.
func scoreBar(score float64) string {
	filled := int(score * 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	switch {
	case score >= 0.7:
		return StyleSuccess.Render(bar)
	case score >= 0.4:
		return StyleWarning.Render(bar)
	default:
		return StyleDim.Render(bar)
	}
}

// printLayoutSummary prints the room inventory of a layout.
func printLayoutSummary(layout *plan.Layout) {
	counts := make(map[plan.RoomType]int)
	for _, room := range layout.Rooms {
		counts[room.Type]++
	}
	var parts []string
	for _, t := range plan.AllRoomTypes {
		if counts[t] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[t], strings.ReplaceAll(string(t), "_", " ")))
		}
	}
	printDetail("%s", strings.Join(parts, " · "))
	printDetail("utilization %.0f%% · %d corridors",
		layout.UtilizationRate()*100, len(layout.Corridors))
}
