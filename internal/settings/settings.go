package settings

type Settings struct {
	HistoryLength int
}
