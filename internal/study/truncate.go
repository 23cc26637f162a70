package study

// TruncationPolicy shortens a document excerpt before it is embedded in a prompt.
// Lengths are counted in characters, not bytes.
type TruncationPolicy interface {
	Apply(text string) string
}

// HeadTail keeps the first Head and last Tail characters when the text is
// longer than Head+Tail, dropping the middle.
type HeadTail struct {
	Head, Tail int
}

func (p HeadTail) Apply(text string) string {
	runes := []rune(text)
	if len(runes) <= p.Head+p.Tail {
		return text
	}
	return string(runes[:p.Head]) + string(runes[len(runes)-p.Tail:])
}

// Prefix keeps at most the first N characters.
type Prefix struct {
	N int
}

func (p Prefix) Apply(text string) string {
	runes := []rune(text)
	if len(runes) <= p.N {
		return text
	}
	return string(runes[:p.N])
}

// Policies used by each endpoint. They differ deliberately and are kept separate.
var (
	QuestionsTruncation TruncationPolicy = HeadTail{Head: 3000, Tail: 3000}
	SummaryTruncation   TruncationPolicy = Prefix{N: 12000}
	QuizTruncation      TruncationPolicy = Prefix{N: 10000}
)
