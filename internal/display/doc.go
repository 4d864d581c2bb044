// Package display renders user-facing tailseek output: the search result, warnings
// and numbered lists.
//
// The located path is the only thing written on success so the output can be used
// in scripts:
//
//	display.ShowResult(os.Stdout, "javac.exe", result, logger.IsTerminal(os.Stdout))
//
// A failed search renders a Warning instead:
//
//	warning := display.Warning{
//	    Title:      "javac.exe not found",
//	    Message:    "Searched 1204 directories in 3 rounds",
//	    Suggestion: "Add a --root or adjust --priority",
//	}
//	warning.Display(os.Stderr, true)
//
// Lists such as the filesystem roots are rendered with ShowList:
//
//	display.ShowList(os.Stdout, "Roots", []string{"C:\\", "D:\\"})
//
// All functions accept io.Writer for testability. Colors are applied only when the
// caller asks for them, so output written to pipes and files stays plain.
package display
