// Package txtar はテキストベースの簡易アーカイブ形式（txtar）を扱うためのパッケージです。
//
// txtar アーカイブは、0行以上のコメントと、それに続くファイルエントリの並びで構成されます。
// 各ファイルエントリは "-- FILENAME --" 形式のマーカー行で始まり、
// 次のマーカー行（または入力の終端）までの行がファイルの内容になります。
// マーカー行は "-- " で始まり " --" で終わる必要があり、
// 囲まれたファイル名の前後の空白は取り除かれます。
//
// 最終行に改行がない場合でも、改行があるものとして扱います。
// txtar には構文エラーが存在しないため、どのような入力でも解析に成功します。
//
// 基本的な使い方:
//
//	a := txtar.Parse(text)
//	fmt.Print(a.Comment())
//	if f, ok := a.Get("example.json"); ok {
//	    fmt.Print(f.Content)
//	}
//	for i, f := range a.All() {
//	    fmt.Println(i, f.Name)
//	}
package txtar
