package tags

type Tag struct {
	ID   int64
	Name string
}
