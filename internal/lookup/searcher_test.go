package lookup

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/glossa/internal/audio"
	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/inference"
	mock_inference "github.com/at-ishikawa/glossa/internal/mocks/inference"
)

func newTestEntry() dictionary.Entry {
	return dictionary.Entry{
		Word:       "aurora",
		Phonetic:   "/ɔːˈrɔːrə/",
		Definition: "a natural display of light in the sky",
		Examples: []dictionary.Example{
			{Sentence: "The aurora danced over the fjord.", Translation: "极光在峡湾上空舞动。"},
			{Sentence: "We drove north to see the aurora.", Translation: "我们驱车北上去看极光。"},
		},
		ChitChat:   "Auroras are named after the Roman goddess of dawn.",
		TargetLang: dictionary.LanguageEnglish,
		NativeLang: dictionary.LanguageChinese,
	}
}

func TestSearcher_Search(t *testing.T) {
	entry := newTestEntry()

	ctrl := gomock.NewController(t)
	mockClient := mock_inference.NewMockClient(ctrl)
	mockClient.EXPECT().
		LookupWord(gomock.Any(), "aurora", dictionary.LanguageChinese, dictionary.LanguageEnglish).
		Return(entry, nil)
	mockClient.EXPECT().
		GenerateEntryImage(gomock.Any(), entry.Word, entry.Definition).
		Return("data:image/png;base64,abcd")
	mockClient.EXPECT().
		SynthesizeSpeech(gomock.Any(), entry.Word, dictionary.LanguageEnglish).
		Return([]byte("word-clip"))
	mockClient.EXPECT().
		SynthesizeSpeech(gomock.Any(), entry.Definition, dictionary.LanguageChinese).
		Return([]byte("definition-clip"))
	for i, example := range entry.Examples {
		mockClient.EXPECT().
			SynthesizeSpeech(gomock.Any(), example.Sentence, dictionary.LanguageEnglish).
			Return([]byte(fmt.Sprintf("sentence-clip-%d", i)))
		mockClient.EXPECT().
			SynthesizeSpeech(gomock.Any(), example.Translation, dictionary.LanguageChinese).
			Return([]byte(fmt.Sprintf("translation-clip-%d", i)))
	}

	searcher := NewSearcher(mockClient, audio.NewCache())
	got, err := searcher.Search(context.Background(), "aurora", dictionary.LanguageChinese, dictionary.LanguageEnglish)
	require.NoError(t, err)

	// The structured result is available before enrichment lands.
	assert.Equal(t, entry, got)
	assert.Empty(t, got.ImageURL)
	assert.Equal(t, StateReady, searcher.State())

	searcher.Wait()

	current, ok := searcher.Current()
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,abcd", current.ImageURL)

	cache := searcher.Cache()
	assert.Equal(t, 6, cache.Len())
	for key, want := range map[string][]byte{
		entry.Word:               []byte("word-clip"),
		entry.Definition:         []byte("definition-clip"),
		audio.ExampleTargetKey(0): []byte("sentence-clip-0"),
		audio.ExampleNativeKey(0): []byte("translation-clip-0"),
		audio.ExampleTargetKey(1): []byte("sentence-clip-1"),
		audio.ExampleNativeKey(1): []byte("translation-clip-1"),
	} {
		data, ok := cache.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, data, key)
	}
}

func TestSearcher_Search_EmptyQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "empty string", query: ""},
		{name: "whitespace only", query: "   \t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockClient := mock_inference.NewMockClient(ctrl)

			searcher := NewSearcher(mockClient, audio.NewCache())
			_, err := searcher.Search(context.Background(), tt.query, dictionary.LanguageChinese, dictionary.LanguageEnglish)
			assert.ErrorIs(t, err, ErrEmptyQuery)
			assert.Equal(t, StateIdle, searcher.State())
		})
	}
}

func TestSearcher_Search_LookupFailure(t *testing.T) {
	malformed := &inference.MalformedResponseError{
		Payload: "not json",
		Err:     errors.New("invalid character"),
	}

	ctrl := gomock.NewController(t)
	mockClient := mock_inference.NewMockClient(ctrl)
	mockClient.EXPECT().
		LookupWord(gomock.Any(), "aurora", dictionary.LanguageChinese, dictionary.LanguageEnglish).
		Return(dictionary.Entry{}, malformed)

	searcher := NewSearcher(mockClient, audio.NewCache())
	_, err := searcher.Search(context.Background(), "aurora", dictionary.LanguageChinese, dictionary.LanguageEnglish)
	require.Error(t, err)

	// The failure mode survives the wrap and the searcher returns to idle
	// without an entry or any enrichment.
	var malformedErr *inference.MalformedResponseError
	assert.ErrorAs(t, err, &malformedErr)
	assert.Equal(t, StateIdle, searcher.State())
	_, ok := searcher.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, searcher.Cache().Len())
}

func TestSearcher_Search_WhileLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mock_inference.NewMockClient(ctrl)

	searcher := NewSearcher(mockClient, audio.NewCache())
	var reentrantErr error
	mockClient.EXPECT().
		LookupWord(gomock.Any(), "aurora", dictionary.LanguageChinese, dictionary.LanguageEnglish).
		DoAndReturn(func(ctx context.Context, query string, nativeLang, targetLang dictionary.Language) (dictionary.Entry, error) {
			_, reentrantErr = searcher.Search(ctx, "borealis", nativeLang, targetLang)
			return dictionary.Entry{}, errors.New("backend unavailable")
		})

	_, err := searcher.Search(context.Background(), "aurora", dictionary.LanguageChinese, dictionary.LanguageEnglish)
	require.Error(t, err)
	assert.ErrorIs(t, reentrantErr, ErrLookupInProgress)
}

func TestSearcher_Search_StaleEnrichmentIsDropped(t *testing.T) {
	first := dictionary.Entry{
		Word:       "alpha",
		Definition: "the first letter",
		TargetLang: dictionary.LanguageEnglish,
		NativeLang: dictionary.LanguageChinese,
	}
	second := dictionary.Entry{
		Word:       "beta",
		Definition: "the second letter",
		TargetLang: dictionary.LanguageEnglish,
		NativeLang: dictionary.LanguageChinese,
	}

	// The first lookup's enrichment requests stall until the second lookup has
	// finished, so their results arrive for an abandoned generation.
	release := make(chan struct{})

	ctrl := gomock.NewController(t)
	mockClient := mock_inference.NewMockClient(ctrl)
	mockClient.EXPECT().
		LookupWord(gomock.Any(), "alpha", gomock.Any(), gomock.Any()).
		Return(first, nil)
	mockClient.EXPECT().
		GenerateEntryImage(gomock.Any(), first.Word, first.Definition).
		DoAndReturn(func(ctx context.Context, word, definition string) string {
			<-release
			return "data:image/png;base64,stale"
		})
	mockClient.EXPECT().
		SynthesizeSpeech(gomock.Any(), first.Word, gomock.Any()).
		DoAndReturn(func(ctx context.Context, text string, lang dictionary.Language) []byte {
			<-release
			return []byte("stale")
		})
	mockClient.EXPECT().
		SynthesizeSpeech(gomock.Any(), first.Definition, gomock.Any()).
		DoAndReturn(func(ctx context.Context, text string, lang dictionary.Language) []byte {
			<-release
			return []byte("stale")
		})

	mockClient.EXPECT().
		LookupWord(gomock.Any(), "beta", gomock.Any(), gomock.Any()).
		Return(second, nil)
	mockClient.EXPECT().
		GenerateEntryImage(gomock.Any(), second.Word, second.Definition).
		Return("data:image/png;base64,fresh")
	mockClient.EXPECT().
		SynthesizeSpeech(gomock.Any(), second.Word, gomock.Any()).
		Return([]byte("fresh"))
	mockClient.EXPECT().
		SynthesizeSpeech(gomock.Any(), second.Definition, gomock.Any()).
		Return([]byte("fresh"))

	searcher := NewSearcher(mockClient, audio.NewCache())
	ctx := context.Background()

	_, err := searcher.Search(ctx, "alpha", dictionary.LanguageChinese, dictionary.LanguageEnglish)
	require.NoError(t, err)

	_, err = searcher.Search(ctx, "beta", dictionary.LanguageChinese, dictionary.LanguageEnglish)
	require.NoError(t, err)

	close(release)
	searcher.Wait()

	current, ok := searcher.Current()
	require.True(t, ok)
	assert.Equal(t, "beta", current.Word)
	assert.Equal(t, "data:image/png;base64,fresh", current.ImageURL)

	cache := searcher.Cache()
	assert.Equal(t, 2, cache.Len())
	for _, key := range []string{second.Word, second.Definition} {
		data, ok := cache.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, []byte("fresh"), data, key)
	}
	_, ok = cache.Get(first.Word)
	assert.False(t, ok)
}

func TestSearcher_Search_ClearsPreviousCache(t *testing.T) {
	entry := dictionary.Entry{
		Word:       "gamma",
		Definition: "the third letter",
		TargetLang: dictionary.LanguageEnglish,
		NativeLang: dictionary.LanguageChinese,
	}

	ctrl := gomock.NewController(t)
	mockClient := mock_inference.NewMockClient(ctrl)
	mockClient.EXPECT().
		LookupWord(gomock.Any(), "gamma", gomock.Any(), gomock.Any()).
		Return(entry, nil)
	mockClient.EXPECT().
		GenerateEntryImage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("")
	mockClient.EXPECT().
		SynthesizeSpeech(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	cache := audio.NewCache()
	cache.Put("leftover", []byte("from a previous entry"))

	searcher := NewSearcher(mockClient, cache)
	_, err := searcher.Search(context.Background(), "gamma", dictionary.LanguageChinese, dictionary.LanguageEnglish)
	require.NoError(t, err)
	searcher.Wait()

	assert.Equal(t, 0, cache.Len())
}
