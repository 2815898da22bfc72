package port

type Clipboard interface {
	WriteText(text string) error
}
