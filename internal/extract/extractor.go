package extract

// Extractor turns a sanitized Document into printable text.
// Implementations must not mutate the document.
type Extractor interface {
    Extract(doc *Document) (string, error)
}

// TextExtractor emits all visible text, one fragment per line.
type TextExtractor struct{}

func (TextExtractor) Extract(doc *Document) (string, error) {
    return Text(doc), nil
}

// FlowExtractor emits the IMAGE/TEXT/STRING feedback flow of the body.
type FlowExtractor struct{}

func (FlowExtractor) Extract(doc *Document) (string, error) {
    return Flow(doc)
}
