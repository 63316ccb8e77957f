package text

// Item is a renderable unit: either a Line or a Block.
type Item interface {
	item()
}

// Line is a single line of output.
type Line string

// Block renders its children one indentation level deeper and emits nothing
// of its own.
type Block []Item

func (Line) item()  {}
func (Block) item() {}

var (
	curlyOpen  = Line("{")
	curlyClose = Line("}")
)

// Curly wraps block in braces under header:
//
//	header
//	{
//	    ...block
//	}
func Curly(header string, block Block) []Item {
	return []Item{Line(header), curlyOpen, block, curlyClose}
}

// Lines builds a Block with one Line per string.
func Lines(lines ...string) Block {
	b := make(Block, 0, len(lines))
	for _, l := range lines {
		b = append(b, Line(l))
	}
	return b
}
