package editor

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"kizuna/internal/model"
	"kizuna/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"
)

const NewsDeleteConfirm = "Да изтрием ли тази новина?"

const (
	maxSlugBase     = 60
	slugInsertTries = 3
)

type NewsDraft struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

type NewsEditor = Editor[model.NewsItem, NewsDraft]

func NewNewsEditor(repo repository.NewsRepository, logger zerolog.Logger) *NewsEditor {
	return New("news", Store[model.NewsItem](&newsStore{repo: repo, slug: Slug}), Definition[model.NewsItem, NewsDraft]{
		Fill: func(n model.NewsItem) NewsDraft {
			return NewsDraft{ID: n.ID, Title: n.Title, Content: n.Content, Image: deref(n.Image)}
		},
		Validate: validateNews,
		Row: func(d NewsDraft) model.NewsItem {
			return model.NewsItem{
				ID:      d.ID,
				Title:   strings.TrimSpace(d.Title),
				Content: strings.TrimSpace(d.Content),
				Image:   optional(d.Image),
			}
		},
		DraftID: func(d NewsDraft) string { return d.ID },
		RowID:   func(n model.NewsItem) string { return n.ID },
	}, logger)
}

func validateNews(d NewsDraft) error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return invalid("Моля, въведете заглавие.")
	case strings.TrimSpace(d.Content) == "":
		return invalid("Моля, въведете съдържание.")
	}
	return nil
}

// newsStore gives new items a slug, retrying with a fresh suffix when one is
// already taken.
type newsStore struct {
	repo repository.NewsRepository
	slug func(title string) string
}

func (s *newsStore) List(ctx context.Context) ([]model.NewsItem, error) {
	return s.repo.List(ctx, 0)
}

func (s *newsStore) Insert(ctx context.Context, n *model.NewsItem) error {
	var err error
	for range slugInsertTries {
		n.Slug = s.slug(n.Title)
		if err = s.repo.Insert(ctx, n); !errors.Is(err, repository.ErrConflict) {
			return err
		}
	}
	return err
}

func (s *newsStore) Update(ctx context.Context, n *model.NewsItem) error {
	return s.repo.Update(ctx, n)
}

func (s *newsStore) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

var bulgarianLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ж': "zh", 'з': "z",
	'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p",
	'р': "r", 'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "sht", 'ъ': "a", 'ь': "y", 'ю': "yu", 'я': "ya",
}

// SlugBase transliterates Bulgarian, strips accents and keeps [a-z0-9-].
func SlugBase(title string) string {
	var translit strings.Builder
	for _, r := range norm.NFC.String(strings.ToLower(title)) {
		if latin, ok := bulgarianLatin[r]; ok {
			translit.WriteString(latin)
			continue
		}
		translit.WriteRune(r)
	}

	var b strings.Builder
	dash := false
	for _, r := range norm.NFKD.String(translit.String()) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
		if b.Len() >= maxSlugBase {
			break
		}
	}
	return strings.Trim(b.String(), "-")
}

// Slug is SlugBase plus a random six-hex-digit suffix.
func Slug(title string) string {
	base := SlugBase(title)
	if base == "" {
		base = "news"
	}
	return base + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}
