package doxygen

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roc-streaming/bindgen/errors"
)

func testSignature() *object.Signature {
	return &object.Signature{
		Name:  "tester",
		Email: "tester@example.com",
		When:  time.Now(),
	}
}

func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return dir, repo
}

func commitFile(t *testing.T, dir string, repo *git.Repository, name string) plumbing.Hash {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))

	w, err := repo.Worktree()
	require.NoError(t, err)
	_, err = w.Add(name)
	require.NoError(t, err)

	hash, err := w.Commit("add "+name, &git.CommitOptions{Author: testSignature()})
	require.NoError(t, err)
	return hash
}

func TestReadGitInfo_TaggedHead(t *testing.T) {
	dir, repo := initRepo(t)
	hash := commitFile(t, dir, repo, "a.txt")

	_, err := repo.CreateTag("v0.4.0", hash, nil)
	require.NoError(t, err)

	info, err := ReadGitInfo(dir)
	require.NoError(t, err)
	assert.Equal(t, "v0.4.0", info.Tag)
	assert.Equal(t, hash.String()[:7], info.Commit)
}

func TestReadGitInfo_CommitsPastTag(t *testing.T) {
	dir, repo := initRepo(t)
	tagged := commitFile(t, dir, repo, "a.txt")

	_, err := repo.CreateTag("v0.4.0", tagged, nil)
	require.NoError(t, err)

	commitFile(t, dir, repo, "b.txt")
	head := commitFile(t, dir, repo, "c.txt")

	info, err := ReadGitInfo(dir)
	require.NoError(t, err)
	assert.Equal(t, "v0.4.0-2-g"+head.String()[:7], info.Tag)
	assert.Equal(t, head.String()[:7], info.Commit)
}

func TestReadGitInfo_AnnotatedTag(t *testing.T) {
	dir, repo := initRepo(t)
	hash := commitFile(t, dir, repo, "a.txt")

	_, err := repo.CreateTag("v0.5.0", hash, &git.CreateTagOptions{
		Message: "release v0.5.0",
		Tagger:  testSignature(),
	})
	require.NoError(t, err)

	info, err := ReadGitInfo(dir)
	require.NoError(t, err)
	assert.Equal(t, "v0.5.0", info.Tag)
}

func TestReadGitInfo_NoTags(t *testing.T) {
	dir, repo := initRepo(t)
	commitFile(t, dir, repo, "a.txt")

	_, err := ReadGitInfo(dir)
	assert.ErrorIs(t, err, errors.ErrNoVersionMetadata)
}

func TestReadGitInfo_NotARepo(t *testing.T) {
	_, err := ReadGitInfo(t.TempDir())
	assert.ErrorIs(t, err, errors.ErrNoVersionMetadata)
}
