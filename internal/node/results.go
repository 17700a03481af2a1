package node

import (
	"log"
	"os"
	"sync"
)

// resultStore はアクション実行結果の保持を担う
// 保持件数の上限を超えると、古い結果から画像ファイルごと破棄する
type resultStore struct {
	mu      sync.RWMutex
	limit   int
	results map[string]*ActionResult
	order   []string // 追加順のActionID
}

// newResultStore は新しいresultStoreを作成する
func newResultStore(limit int) *resultStore {
	return &resultStore{
		limit:   limit,
		results: make(map[string]*ActionResult),
	}
}

// Add は実行結果を追加し、上限超過分を破棄する
func (s *resultStore) Add(result *ActionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results[result.ActionID] = result
	s.order = append(s.order, result.ActionID)

	for len(s.order) > s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]

		if old, ok := s.results[oldest]; ok {
			delete(s.results, oldest)
			if old.ImagePath != "" {
				if err := os.Remove(old.ImagePath); err != nil && !os.IsNotExist(err) {
					log.Printf("古い撮影画像の削除に失敗: %v", err)
				}
			}
		}
	}
}

// Get はActionIDで実行結果を取得する
func (s *resultStore) Get(actionID string) (*ActionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.results[actionID]
	return result, ok
}

// Len は保持している結果の件数を返す
func (s *resultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}
