package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hayeah/projtree/scanner"
)

// ChartOptions controls Chart layout.
type ChartOptions struct {
	BarWidth     int        // 0 = auto (35% of the terminal, at most 30)
	FillRune     rune       // default '█'
	ThresholdPct float64    // subtrees below this share of all directories are folded into "dir/**"
	TermWidth    func() int // must return columns
}

// DefaultChartOptions returns the options used by the tree command.
func DefaultChartOptions(termWidth func() int) ChartOptions {
	return ChartOptions{
		FillRune:     '█',
		ThresholdPct: 5,
		TermWidth:    termWidth,
	}
}

// Chart writes a bar chart of where the directories below root are. Each
// bar is a subtree (or a fold of small subtrees) and its directory count.
func Chart(w io.Writer, root scanner.DirectoryNode, opt ChartOptions) error {
	total := root.Count()
	buckets := collapseSmallDirs(root, total, opt.ThresholdPct)
	for _, ln := range layoutChart(buckets, total, root.Depth(), opt) {
		if _, err := fmt.Fprintln(w, ln); err != nil {
			return err
		}
	}
	return nil
}

type bucket struct {
	Label string
	Dirs  int
}

// collapseSmallDirs splits the directories below root into buckets. A
// subtree at or above the threshold with a large child is expanded, a large
// subtree without one becomes a single bucket, and small subtrees are folded
// into their parent's "dir/**" bucket together with the parent itself.
func collapseSmallDirs(root scanner.DirectoryNode, total int, thresholdPct float64) []bucket {
	thresh := float64(total) * thresholdPct / 100
	large := func(n scanner.DirectoryNode) bool {
		return float64(n.Count()+1) >= thresh
	}

	var out []bucket
	var walk func(n scanner.DirectoryNode, rel string, self int)
	walk = func(n scanner.DirectoryNode, rel string, self int) {
		rest := self
		folded := false
		for _, c := range n.Children {
			cur := c.Name
			if rel != "" {
				cur = rel + "/" + c.Name
			}

			switch {
			case !large(c):
				rest += c.Count() + 1
				folded = true
			case hasChild(c, large):
				walk(c, cur, 1)
			default:
				out = append(out, bucket{Label: cur, Dirs: c.Count() + 1})
			}
		}

		if rest == 0 {
			return
		}
		label := rel
		if folded {
			label = strings.TrimPrefix(rel+"/**", "/")
		}
		out = append(out, bucket{Label: label, Dirs: rest})
	}
	walk(root, "", 0)
	return out
}

func hasChild(n scanner.DirectoryNode, pred func(scanner.DirectoryNode) bool) bool {
	for _, c := range n.Children {
		if pred(c) {
			return true
		}
	}
	return false
}

func layoutChart(buckets []bucket, total, depth int, opt ChartOptions) []string {
	if len(buckets) == 0 {
		return []string{"No directories"}
	}
	const pctW, dirsW, gapW = 6, 6, 2

	// smallest first, so the largest subtree ends up next to the total
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].Dirs != buckets[j].Dirs {
			return buckets[i].Dirs < buckets[j].Dirs
		}
		return buckets[i].Label < buckets[j].Label
	})

	barW := opt.BarWidth
	if barW <= 0 {
		barW = min(int(float64(opt.TermWidth())*0.35), 30)
	}
	barW = max(barW, 1)
	keyW := max(opt.TermWidth()-(barW+pctW+dirsW+gapW*3), 8)

	maxDirs := 0
	for _, b := range buckets {
		maxDirs = max(maxDirs, b.Dirs)
	}

	trim := func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		return "…" + s[len(s)-n+1:]
	}

	fill := opt.FillRune
	if fill == 0 {
		fill = '█'
	}
	var lines []string
	for _, b := range buckets {
		barLen := int(float64(b.Dirs)/float64(maxDirs)*float64(barW) + 0.5)
		if barLen == 0 {
			barLen = 1
		}
		bar := strings.Repeat(string(fill), barLen)
		lines = append(lines, strings.TrimRight(fmt.Sprintf("%s%s  %5.1f%%  %*d  %s",
			bar, strings.Repeat(" ", barW-barLen), pct(b.Dirs, total), dirsW, b.Dirs, trim(b.Label, keyW)), " "))
	}

	lines = append(lines, fmt.Sprintf("%s  %5.1f%%  %*d  %s",
		strings.Repeat("─", barW), 100.0, dirsW, total, "TOTAL"))
	lines = append(lines, fmt.Sprintf("\nSummary: %d directories, %d levels deep", total, depth))

	return lines
}

func pct(part, total int) float64 { return float64(part) * 100 / float64(total) }
