package app

import (
	"context"
	"fmt"
	"sync"

	apperrors "github.com/shiroemons/go-txtar/internal/errors"
	"github.com/shiroemons/go-txtar/internal/fileutil"
	"github.com/shiroemons/go-txtar/internal/models"
	"github.com/shiroemons/go-txtar/pkg/txtar"
)

// 抽出ジョブを表す構造体
type extractJob struct {
	name    string
	data    []byte
	outPath string
}

// 抽出結果
type extractResult struct {
	name string
	err  error
}

// Extract はアーカイブ内のファイルを出力ディレクトリに展開します。
// names が空の場合は全ファイルを展開します。
// 同名のファイルが複数ある場合は最初のものだけを展開します。
// エラーがあっても残りのファイルの展開を続け、最初のエラーを返します。
func (a *App) Extract(ctx context.Context, path string, names []string) (models.ExtractResult, error) {
	archive, _, err := a.Load(ctx, path)
	if err != nil {
		return models.ExtractResult{}, err
	}
	if archive.Len() == 0 {
		return models.ExtractResult{NotFound: names}, ErrNoFilesFound
	}

	jobs, result, planErr := a.planExtract(archive, names)

	var count int
	var extractErr error
	if a.config.Parallel {
		count, extractErr = a.extractParallel(ctx, jobs)
	} else {
		count, extractErr = a.extractSequential(ctx, jobs)
	}
	result.Count = count

	if planErr != nil {
		return result, planErr
	}
	return result, extractErr
}

// planExtract は展開するファイルと出力先を決定します
func (a *App) planExtract(archive *txtar.Archive, names []string) ([]extractJob, models.ExtractResult, error) {
	var result models.ExtractResult
	var firstErr error

	// names が指定されている場合、Setに変換して高速ルックアップ
	extractSet := make(map[string]bool, len(names))
	for _, n := range names {
		extractSet[n] = true
	}

	var jobs []extractJob
	seen := make(map[string]bool)
	// 出力先パスごとに最初のファイルだけを展開する（a/b と ./a/b など）
	written := make(map[string]bool)
	for _, f := range archive.All() {
		if len(extractSet) > 0 && !extractSet[f.Name] {
			continue
		}
		seen[f.Name] = true

		outPath, err := fileutil.SafeJoin(a.config.OutputDir, f.Name)
		if err != nil {
			fmt.Fprintf(a.stderr, "展開できないファイル名です: %q: %v\n", f.Name, err)
			if firstErr == nil {
				firstErr = apperrors.NewEntryError(f.Name, err)
			}
			continue
		}
		if written[outPath] {
			a.logger.Printf("出力先が重複するためスキップします: %s -> %s\n", f.Name, outPath)
			result.Skipped = append(result.Skipped, f.Name)
			continue
		}
		written[outPath] = true

		data, err := fileutil.EncodeText(f.Content, a.config.Encoding)
		if err != nil {
			fmt.Fprintf(a.stderr, "文字コードを変換できません: %q: %v\n", f.Name, err)
			if firstErr == nil {
				firstErr = apperrors.NewEntryError(f.Name, err)
			}
			continue
		}

		jobs = append(jobs, extractJob{name: f.Name, data: data, outPath: outPath})
	}

	// 指定されたファイルが見つからなかったものを指定順にリストアップ
	for _, n := range names {
		if !seen[n] {
			result.NotFound = append(result.NotFound, n)
			seen[n] = true
		}
	}

	return jobs, result, firstErr
}

// extractSequential は並列処理なしで展開します
func (a *App) extractSequential(ctx context.Context, jobs []extractJob) (int, error) {
	successCount := 0
	var firstErr error
	for _, job := range jobs {
		// コンテキストのキャンセルチェック
		select {
		case <-ctx.Done():
			return successCount, ctx.Err()
		default:
		}

		res := a.extractOne(job)
		if res.err != nil {
			fmt.Fprintf(a.stderr, "展開に失敗しました: %s - %v\n", res.name, res.err)
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: %w", ErrExtractFailed, res.err)
			}
			continue
		}
		successCount++
		a.logger.Printf("展開しました: %s -> %s\n", job.name, job.outPath)
	}
	return successCount, firstErr
}

// extractParallel はワーカーを使って並列に展開します
func (a *App) extractParallel(ctx context.Context, jobs []extractJob) (int, error) {
	numWorkers := a.config.Workers
	if numWorkers <= 0 {
		numWorkers = 4 // デフォルトのワーカー数
	}

	jobCh := make(chan extractJob, numWorkers*2)
	results := make(chan extractResult, numWorkers*2)

	// ワーカーを起動
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				if err := ctx.Err(); err != nil {
					results <- extractResult{name: job.name, err: err}
					continue
				}
				results <- a.extractOne(job)
			}
		}()
	}

	// 結果処理用のgoroutineを起動
	successCount := 0
	var resultErr error
	resultDone := make(chan struct{})
	go func() {
		for result := range results {
			if result.err != nil {
				fmt.Fprintf(a.stderr, "展開に失敗しました: %s - %v\n", result.name, result.err)
				if resultErr == nil { // 最初のエラーを保持
					resultErr = fmt.Errorf("%w: %w", ErrExtractFailed, result.err)
				}
				continue
			}
			successCount++
			a.logger.Printf("成功: %s\n", result.name)
		}
		close(resultDone)
	}()

	// ジョブを投入
	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)

	// 全てのワーカーが終了するのを待つ
	wg.Wait()
	close(results)
	<-resultDone

	return successCount, resultErr
}

// extractOne は1つのファイルを書き込みます
func (a *App) extractOne(job extractJob) extractResult {
	err := fileutil.SaveToFile(a.fs, job.outPath, job.data, a.config.Overwrite)
	if err != nil {
		return extractResult{name: job.name, err: apperrors.NewEntryError(job.name, err)}
	}
	return extractResult{name: job.name}
}
