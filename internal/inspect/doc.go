// Package inspect reads a rendered landing page back into a structured summary.
//
// The build pipeline uses the summary to verify its own output: which section
// anchors exist, which demo panels are visible, how many decorative nodes and
// edges were drawn, what the counters will animate to and which icons fell
// back to a placeholder.
//
// # Usage
//
//	result, err := inspect.NewParser().Parse(f)
//	if err != nil {
//		return err
//	}
//	for _, p := range result.VisiblePanels() {
//		fmt.Println(p.ID)
//	}
package inspect
