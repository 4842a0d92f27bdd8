package extmocks

//go:generate mockgen -package extmocks -destination listtrace_reporter.go -mock_names Reporter=ReporterMock github.com/sirkon/ringlist/internal/listtrace Reporter
