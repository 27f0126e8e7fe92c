package rules

// EventKind identifies a change notification.
type EventKind uint8

const (
	PieceAdded EventKind = iota + 1
	PieceRemoved
	PiecesChanged
	BoardChanged
	MoveMade
	MoveUndone
)

func (k EventKind) String() string {
	switch k {
	case PieceAdded:
		return "pieceAdded"
	case PieceRemoved:
		return "pieceRemoved"
	case PiecesChanged:
		return "piecesChanged"
	case BoardChanged:
		return "boardChanged"
	case MoveMade:
		return "moveMade"
	case MoveUndone:
		return "moveUndone"
	}
	return "unknown"
}

// Event is delivered to listeners after a change has been committed. Only the
// fields relevant to Kind are set; slices and arrays are copies. Square is NoSquare
// for every kind other than PieceAdded and PieceRemoved.
type Event struct {
	Kind    EventKind
	Piece   Piece            // PieceAdded, PieceRemoved
	Square  Square           // PieceAdded, PieceRemoved
	Pieces  []PieceSquare    // PiecesChanged
	Squares [boardSize]Piece // BoardChanged
	Move    Move             // MoveMade, MoveUndone
}

type listener struct {
	id int
	fn func(Event)
}

// Subscribe registers fn for every event and returns a function that removes it.
// Listeners run synchronously, in registration order.
func (b *Board) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.nextListener++
	id := b.nextListener
	b.listeners = append(b.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

func (b *Board) emit(e Event) {
	for _, l := range b.listeners {
		l.fn(e)
	}
}

// emitPositionChanged publishes the aggregate piece list and square array.
func (b *Board) emitPositionChanged() {
	if len(b.listeners) == 0 {
		return
	}
	b.emit(Event{Kind: PiecesChanged, Square: NoSquare, Pieces: b.Pieces()})
	b.emit(Event{Kind: BoardChanged, Square: NoSquare, Squares: b.squares})
}
