package progress

import "log"

// gooseLogger sends goose migration output to the application log file
// instead of stdout, which belongs to the TUI.
type gooseLogger struct {
	l *log.Logger
}

func (g *gooseLogger) Printf(format string, v ...interface{}) {
	if g == nil || g.l == nil {
		log.Printf("goose: "+format, v...)
		return
	}
	g.l.Printf("goose: "+format, v...)
}

// Fatalf is only reached by goose on unrecoverable migration errors.
func (g *gooseLogger) Fatalf(format string, v ...interface{}) {
	if g == nil || g.l == nil {
		log.Fatalf("goose: "+format, v...)
	}
	g.l.Fatalf("goose: "+format, v...)
}
