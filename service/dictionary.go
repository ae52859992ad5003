package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Xushengqwer/house_service/myErrors"
	"github.com/Xushengqwer/house_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/house_service/repo/redis"
)

// titleRequiredMessage 字典标题为空时的提示
const titleRequiredMessage = "Название обязательно"

// dictionaryCore 字典服务的公共部分：带缓存的列表、单行写入和写后失效。
// T 是实体类型，V 是响应类型。
type dictionaryCore[T mysql.DictionaryEntity, V any] struct {
	repo      mysql.DictionaryRepository[T]
	cache     listingCache
	listPath  string   // 列表缓存路径
	stalePath []string // 写操作成功后失效的路径（含 listPath）
	toVO      func(*T) *V
	logger    *zap.Logger
}

func newDictionaryCore[T mysql.DictionaryEntity, V any](
	repo mysql.DictionaryRepository[T],
	cache redisrepo.ListingCache,
	logger *zap.Logger,
	toVO func(*T) *V,
	listPath string,
	extraStale ...string,
) dictionaryCore[T, V] {
	return dictionaryCore[T, V]{
		repo:      repo,
		cache:     newListingCache(cache, logger),
		listPath:  listPath,
		stalePath: append([]string{listPath}, extraStale...),
		toVO:      toVO,
		logger:    logger,
	}
}

// list 读取失败返回 nil
func (c dictionaryCore[T, V]) list(ctx context.Context) []*V {
	var cached []*V
	if c.cache.load(ctx, c.listPath, &cached) {
		return cached
	}

	rows, err := c.repo.List(ctx)
	if err != nil {
		c.logger.Error("查询字典列表失败", zap.String("path", c.listPath), zap.Error(err))
		return nil
	}
	out := make([]*V, 0, len(rows))
	for _, row := range rows {
		out = append(out, c.toVO(row))
	}
	c.cache.store(ctx, c.listPath, out)
	return out
}

func (c dictionaryCore[T, V]) create(ctx context.Context, row *T) error {
	if err := c.repo.Create(ctx, row); err != nil {
		return err
	}
	c.cache.invalidate(ctx, c.stalePath...)
	return nil
}

func (c dictionaryCore[T, V]) update(ctx context.Context, id uint64, fields map[string]interface{}) error {
	if err := c.repo.Update(ctx, id, fields); err != nil {
		return err
	}
	c.cache.invalidate(ctx, c.stalePath...)
	return nil
}

func (c dictionaryCore[T, V]) delete(ctx context.Context, id uint64) error {
	if id == 0 {
		return myErrors.ErrMissingID
	}
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.cache.invalidate(ctx, c.stalePath...)
	return nil
}

// requireText 去掉首尾空白后为空时返回字段错误
func requireText(value, field, message string) error {
	if strings.TrimSpace(value) == "" {
		return myErrors.NewFieldError(field, message)
	}
	return nil
}
