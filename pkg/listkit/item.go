package listkit

import "image/color"

// FontSpec describes the font a row is drawn with. Hosts resolve it to a
// concrete font; an empty Family means the host's default UI font.
type FontSpec struct {
	Family    string
	PointSize int
	Bold      bool
	Italic    bool
}

// Item is a single row of a List. Its identity is its index: removing an
// item shifts every later item up by one.
type Item struct {
	Text            string
	TextColor       color.RGBA
	BackgroundColor color.RGBA
	Font            FontSpec
	Metadata        any // Application-specific data attached to the item
}

// itemStore is the ordered, index-addressed backing slice of a List.
type itemStore struct {
	items []Item
}

func (s *itemStore) len() int {
	return len(s.items)
}

func (s *itemStore) valid(index int) bool {
	return index >= 0 && index < len(s.items)
}

func (s *itemStore) add(item Item) int {
	s.items = append(s.items, item)
	return len(s.items) - 1
}

func (s *itemStore) removeAt(index int) {
	copy(s.items[index:], s.items[index+1:])
	s.items[len(s.items)-1] = Item{}
	s.items = s.items[:len(s.items)-1]
}

func (s *itemStore) clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// at returns a pointer into the backing slice. It is only valid until the
// next structural change.
func (s *itemStore) at(index int) *Item {
	return &s.items[index]
}
