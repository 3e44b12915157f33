package ports

/*
TranscriptSink persists the responses of a run. It is called once, after
every line has been processed.
*/
type TranscriptSink interface {
	WriteTranscript(lines []string) error
	GetDestination() string
}
