package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/mycv/internal/schemas"
	"github.com/jonathan/mycv/internal/testutil"
	"github.com/jonathan/mycv/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LoadsAllLanguages(t *testing.T) {
	dir := testutil.WriteAssets(t)

	repo, err := New(dir)
	require.NoError(t, err)
	require.NotNil(t, repo)

	for _, lang := range types.Languages() {
		resume, ok := repo.Get(lang)
		require.True(t, ok, "language %s missing from cache", lang)
		assert.Equal(t, "Tech Company "+lang.Code(), resume.WorkExperience[0].Company)
	}
}

func TestNew_ProjectAssets(t *testing.T) {
	repo, err := New(filepath.Join("..", "..", "assets"))
	require.NoError(t, err)

	for _, lang := range types.Languages() {
		resume, ok := repo.Get(lang)
		require.True(t, ok)
		assert.NotEmpty(t, resume.PersonalInfo.FullName)
		assert.NotEmpty(t, resume.WorkExperience)
	}
}

func TestNew_MissingLanguageFile(t *testing.T) {
	dir := testutil.WriteAssets(t, types.Thai)

	repo, err := New(dir)
	require.Error(t, err)
	assert.Nil(t, repo)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, types.Thai, loadErr.Language)

	var readErr *FileReadError
	require.ErrorAs(t, err, &readErr)
	assert.True(t, readErr.NotExist())
	assert.Equal(t, testutil.AssetPath(dir, types.Thai), readErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to load resume for language th")
}

func TestNew_SeveralBrokenFilesReportsFirstInOrder(t *testing.T) {
	for range 20 {
		dir := testutil.WriteAssets(t, types.Thai)
		testutil.WriteFile(t, testutil.AssetPath(dir, types.English), "summary = ")

		_, err := New(dir)

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, types.English, loadErr.Language)

		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	}
}

func TestNew_InvalidLanguageFile(t *testing.T) {
	dir := testutil.WriteAssets(t)
	testutil.WriteFile(t, testutil.AssetPath(dir, types.Russian), `summary = "no sections"`)

	repo, err := New(dir)
	require.Error(t, err)
	assert.Nil(t, repo)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, types.Russian, parseErr.Language)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestGet_ReturnsIndependentCopies(t *testing.T) {
	repo, err := New(testutil.WriteAssets(t))
	require.NoError(t, err)

	first, ok := repo.Get(types.English)
	require.True(t, ok)
	first.Summary = "mutated"
	first.WorkExperience[0].Responsibilities[0] = "mutated"

	second, ok := repo.Get(types.English)
	require.True(t, ok)
	assert.Equal(t, "Backend developer (en).", second.Summary)
	assert.Equal(t, "Developed gRPC services", second.WorkExperience[0].Responsibilities[0])
}

func TestGet_UnknownLanguage(t *testing.T) {
	repo, err := New(testutil.WriteAssets(t))
	require.NoError(t, err)

	resume, ok := repo.Get(types.Language(42))
	assert.False(t, ok)
	assert.Nil(t, resume)
}

func TestLoad_ReadsFreshFromDisk(t *testing.T) {
	dir := testutil.WriteAssets(t)
	repo, err := New(dir)
	require.NoError(t, err)

	updated := testutil.MinimalTOML("updated")
	testutil.WriteFile(t, testutil.AssetPath(dir, types.English), updated)

	fresh, err := repo.Load(types.English)
	require.NoError(t, err)
	assert.Equal(t, "Backend developer (updated).", fresh.Summary)

	cached, ok := repo.Get(types.English)
	require.True(t, ok)
	assert.Equal(t, "Backend developer (en).", cached.Summary)
}

func TestLoad_FileRemovedAfterConstruction(t *testing.T) {
	dir := testutil.WriteAssets(t)
	repo, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.Remove(testutil.AssetPath(dir, types.Russian)))

	_, err = repo.Load(types.Russian)
	var readErr *FileReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, types.Russian, readErr.Language)

	_, ok := repo.Get(types.Russian)
	assert.True(t, ok)
}

func TestFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("assets", "resume_th.toml"), FilePath("assets", types.Thai))
	assert.Equal(t, filepath.Join("data", "resume_ru.toml"), FilePath("data", types.Russian))
}

func TestReadFile_WithoutRepository(t *testing.T) {
	dir := testutil.WriteAssets(t, types.English)

	resume, err := ReadFile(dir, types.Thai)
	require.NoError(t, err)
	assert.Equal(t, "Tech Company th", resume.WorkExperience[0].Company)

	_, err = ReadFile(dir, types.English)
	var readErr *FileReadError
	require.ErrorAs(t, err, &readErr)
	assert.True(t, readErr.NotExist())
	assert.Equal(t, FilePath(dir, types.English), readErr.Path)
}
