package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"TTSConverter/internal/service/tts"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Option — один выбираемый голос: уникальное имя провайдера и подпись для списка.
type Option struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Catalog — голоса, сгруппированные по первому коду языка. Порядок внутри группы
// повторяет порядок ответа провайдера. После построения каталог только читается.
type Catalog map[string][]Option

// Build группирует голоса провайдера. Каждый голос попадает ровно в одну группу —
// по своему первому коду языка; подпись имеет вид "{name} ({Gender})".
func Build(voices []tts.Voice) Catalog {
	out := make(Catalog)
	for _, v := range voices {
		if len(v.LanguageCodes) == 0 {
			continue
		}
		lang := v.LanguageCodes[0]
		out[lang] = append(out[lang], Option{
			Name:  v.Name,
			Label: fmt.Sprintf("%s (%s)", v.Name, v.Gender),
		})
	}
	return out
}

// Languages возвращает отсортированный список кодов языков для выпадающего списка.
func (c Catalog) Languages() []string {
	langs := make([]string, 0, len(c))
	for lang := range c {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Options возвращает голоса группы в исходном порядке провайдера.
func (c Catalog) Options(lang string) []Option {
	return c[lang]
}

// Resolve находит имя голоса по его подписи внутри группы. Подписи уникальны,
// потому что уникальны имена голосов.
func (c Catalog) Resolve(lang, label string) (string, bool) {
	for _, opt := range c[lang] {
		if opt.Label == label {
			return opt.Name, true
		}
	}
	return "", false
}

// Has сообщает, известен ли каталогу голос с таким именем.
func (c Catalog) Has(voiceName string) bool {
	for _, opts := range c {
		for _, opt := range opts {
			if opt.Name == voiceName {
				return true
			}
		}
	}
	return false
}

// Len — общее число голосов во всех группах.
func (c Catalog) Len() int {
	n := 0
	for _, opts := range c {
		n += len(opts)
	}
	return n
}

// Cache владеет каталогом на время жизни процесса: первый успешный запрос
// мемоизируется, инвалидации нет. Неудачный запрос не кэшируется — следующий
// вызов повторит попытку. Параллельные первые вызовы сведены к одному
// сетевому запросу через singleflight.
type Cache struct {
	lister tts.VoiceLister
	logger *zap.SugaredLogger

	flight singleflight.Group
	mu     sync.RWMutex
	cat    Catalog
}

func NewCache(lister tts.VoiceLister, logger *zap.SugaredLogger) *Cache {
	return &Cache{lister: lister, logger: logger}
}

// GetOrFetch возвращает мемоизированный каталог либо строит его одним запросом
// к провайдеру. При ошибке возвращает пустой каталог и ErrCatalogFetch.
func (c *Cache) GetOrFetch(ctx context.Context) (Catalog, error) {
	if cat, ok := c.Cached(); ok {
		return cat, nil
	}

	v, err, _ := c.flight.Do("voices", func() (any, error) {
		// Повторная проверка: конкурирующий вызов мог уже заполнить кэш.
		if cat, ok := c.Cached(); ok {
			return cat, nil
		}
		voices, err := c.lister.ListVoices(ctx)
		if err != nil {
			return nil, err
		}
		cat := Build(voices)
		c.mu.Lock()
		c.cat = cat
		c.mu.Unlock()
		if c.logger != nil {
			c.logger.Infow("voice catalog fetched", "languages", len(cat), "voices", cat.Len())
		}
		return cat, nil
	})
	if err != nil {
		if c.logger != nil {
			c.logger.Errorw("voice catalog fetch failed", "error", err)
		}
		if errors.Is(err, tts.ErrCatalogFetch) {
			return Catalog{}, err
		}
		return Catalog{}, fmt.Errorf("%w: %v", tts.ErrCatalogFetch, err)
	}
	return v.(Catalog), nil
}

// Cached возвращает каталог, если он уже построен, без обращения к провайдеру.
func (c *Cache) Cached() (Catalog, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cat, c.cat != nil
}
