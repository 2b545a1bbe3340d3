package mocks

// MockArchiveFinder はテスト用のArchiveFinderモック
type MockArchiveFinder struct {
	Path  string
	Error error
	Calls int
}

// Find はモックの検索結果を返します
func (f *MockArchiveFinder) Find() (string, error) {
	f.Calls++
	return f.Path, f.Error
}
