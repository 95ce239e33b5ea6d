package main

import "stet.codes/styleguide/pages"

// docStyle is the shared outer frame style for content areas.
// The actual width/height are set dynamically in AppModel.View based on the
// current terminal size (tea.WindowSizeMsg).
var docStyle = pages.DocStyle
