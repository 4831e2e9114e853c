package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/jabuspark/internal/client/router"
)

func (a *App) dashboardView(ctx context.Context, _ *router.Match) (string, error) {
	sum, err := a.svc.Dashboard.Summary(ctx)
	if err != nil {
		a.printf("%s\n", describeError(err, "Could not load the dashboard"))
		return "", nil
	}

	name := "Student"
	if u, ok := a.store.GetUser(ctx); ok {
		name = u.Name
	}
	if sum.User != nil && sum.User.Name != "" {
		name = sum.User.Name
	}
	a.printf("== Dashboard ==\nHello, %s.\n", name)

	if len(sum.Stats) > 0 {
		keys := make([]string, 0, len(sum.Stats))
		for k := range sum.Stats {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			a.printf("  %-20s %v\n", k, formatStat(sum.Stats[k]))
		}
	}

	if len(sum.RecentDrills) == 0 {
		a.printf("No drills yet. Try: courses\n")
		return "", nil
	}
	a.printf("Recent drills:\n")
	for _, d := range sum.RecentDrills {
		title := d.Title
		if title == "" {
			title = "Drill"
		}
		a.printf("  %-24s %d/%d", title, d.NumCorrect, d.NumQuestions)
		if d.CreatedAt != "" {
			a.printf("  %s", d.CreatedAt)
		}
		a.printf("\n")
	}
	return "", nil
}

func formatStat(v any) string {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(v)
}
