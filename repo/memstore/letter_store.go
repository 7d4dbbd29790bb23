package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/letter_service/models/entities"
	"github.com/Xushengqwer/letter_service/myErrors"
	"github.com/Xushengqwer/letter_service/repo"
)

// maxRecentEntries 限制最新索引的长度，防止降级模式下内存无界增长。
// 超出部分只从索引里滑出，详情记录仍可按 ID 访问。
const maxRecentEntries = 100

// popularEntry 是热门索引中的一项。
type popularEntry struct {
	letterID string
	score    int64
}

// Store 是 repo.LetterStore 的进程内实现，在 Redis 未配置时自动启用。
//
// 它与 Redis 后端保持一致的排序语义: 最新索引按插入序（新的在前），
// 热门索引按分数降序、同分时先入索引的在前。数据只存在于当前进程，
// 重启即丢，也不会在多实例之间共享——这是开发/降级模式，不是生产持久化。
//
// 并发约束: 点赞的"查重-入集合-计数-重排"整体在一把互斥锁内完成，
// 因此计数与排名在本实现里都是精确的，而 Redis 后端的排名是最终一致的。
type Store struct {
	mu      sync.Mutex
	letters map[string]*entities.SharedLetter
	recent  []string                       // 新的在前
	popular []popularEntry                 // 分数降序，同分先入在前
	likers  map[string]map[string]struct{} // letterID -> 已点赞的会话集合
	flagged map[string]struct{}

	logger *core.ZapLogger
}

// NewStore 构造一个空的内存存储。
func NewStore(logger *core.ZapLogger) *Store {
	return &Store{
		letters: make(map[string]*entities.SharedLetter),
		likers:  make(map[string]map[string]struct{}),
		flagged: make(map[string]struct{}),
		logger:  logger,
	}
}

var _ repo.LetterStore = (*Store)(nil)

// Share 实现分享落库。三个结构的写入在同一把锁内完成，天然不会出现部分写入。
func (s *Store) Share(_ context.Context, content, parentRole, childName string, isAnonymous bool) (*entities.SharedLetter, error) {
	letter := repo.NewSharedLetter(content, parentRole, childName, isAnonymous)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.letters[letter.ID] = letter

	s.recent = append([]string{letter.ID}, s.recent...)
	if len(s.recent) > maxRecentEntries {
		s.recent = s.recent[:maxRecentEntries]
	}

	s.popular = append(s.popular, popularEntry{letterID: letter.ID, score: 0})
	s.sortPopularLocked()

	copied := *letter
	return &copied, nil
}

// List 实现展示墙分页读取。索引里存在但详情缺失的 ID 静默跳过。
func (s *Store) List(_ context.Context, sortBy repo.SortBy, limit, offset int) ([]*entities.SharedLetter, error) {
	if limit <= 0 || offset < 0 {
		return []*entities.SharedLetter{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	if sortBy == repo.SortByPopular {
		ids = make([]string, 0, len(s.popular))
		for _, entry := range s.popular {
			ids = append(ids, entry.letterID)
		}
	} else {
		ids = s.recent
	}

	if offset >= len(ids) {
		return []*entities.SharedLetter{}, nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}

	letters := make([]*entities.SharedLetter, 0, end-offset)
	for _, id := range ids[offset:end] {
		letter, ok := s.letters[id]
		if !ok {
			s.logger.Warn("索引中的家书详情缺失，已跳过", zap.String("letterID", id))
			continue
		}
		copied := *letter
		letters = append(letters, &copied)
	}
	return letters, nil
}

// Get 按 ID 读取详情，返回副本以避免调用方与后续点赞产生数据竞争。
func (s *Store) Get(_ context.Context, letterID string) (*entities.SharedLetter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	letter, ok := s.letters[letterID]
	if !ok {
		return nil, myErrors.ErrLetterNotFound
	}
	copied := *letter
	return &copied, nil
}

// Like 实现按会话去重的点赞。
// 整个检查-变更序列持锁执行，(letterID, sessionID) 构成临界区:
// 同一会话并发重复点赞至多计入一次，likes 恒等于点赞集合的基数。
func (s *Store) Like(_ context.Context, letterID, sessionID string) (*repo.LikeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	letter, ok := s.letters[letterID]
	if !ok {
		return nil, myErrors.ErrLetterNotFound
	}

	sessions, ok := s.likers[letterID]
	if !ok {
		sessions = make(map[string]struct{})
		s.likers[letterID] = sessions
	}

	if _, already := sessions[sessionID]; already {
		return &repo.LikeResult{Success: false, Likes: letter.Likes, AlreadyLiked: true}, nil
	}

	sessions[sessionID] = struct{}{}
	letter.Likes++
	s.rescorePopularLocked(letterID, letter.Likes)

	return &repo.LikeResult{Success: true, Likes: letter.Likes, AlreadyLiked: false}, nil
}

// HasLiked 查询某会话是否已点赞过。
func (s *Store) HasLiked(_ context.Context, letterID, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, ok := s.likers[letterID]
	if !ok {
		return false, nil
	}
	_, liked := sessions[sessionID]
	return liked, nil
}

// Flag 将家书加入举报集合。
func (s *Store) Flag(_ context.Context, letterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flagged[letterID] = struct{}{}
	return nil
}

// FlagCount 读取举报计数（0 或 1，见 Redis 实现的说明）。
func (s *Store) FlagCount(_ context.Context, letterID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flagged[letterID]; ok {
		return 1, nil
	}
	return 0, nil
}

// rescorePopularLocked 把指定家书移到热门索引的新分数位置。
// 先移除旧项再追加、最后稳定排序，同分项保持先入在前。调用方必须持锁。
func (s *Store) rescorePopularLocked(letterID string, score int64) {
	for i, entry := range s.popular {
		if entry.letterID == letterID {
			s.popular = append(s.popular[:i], s.popular[i+1:]...)
			break
		}
	}
	s.popular = append(s.popular, popularEntry{letterID: letterID, score: score})
	s.sortPopularLocked()
}

// sortPopularLocked 按分数降序稳定排序热门索引。调用方必须持锁。
func (s *Store) sortPopularLocked() {
	sort.SliceStable(s.popular, func(i, j int) bool {
		return s.popular[i].score > s.popular[j].score
	})
}
