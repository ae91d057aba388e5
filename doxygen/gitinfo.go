package doxygen

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/roc-streaming/bindgen/api"
	"github.com/roc-streaming/bindgen/errors"
	"github.com/roc-streaming/bindgen/logger"
)

const shortHashLen = 7

// ReadGitInfo reads the toolkit checkout's nearest tag and short HEAD
// commit. Generated file headers carry both, so a checkout without version
// metadata is a fatal input condition.
func ReadGitInfo(toolkitDir string) (api.GitInfo, error) {
	repo, err := git.PlainOpen(toolkitDir)
	if err != nil {
		return api.GitInfo{}, errors.Wrapf(errors.ErrNoVersionMetadata,
			"not a git repository: %s", toolkitDir)
	}

	head, err := repo.Head()
	if err != nil {
		return api.GitInfo{}, errors.Wrapf(errors.ErrNoVersionMetadata,
			"no HEAD in %s: %v", toolkitDir, err)
	}

	commit := head.Hash().String()[:shortHashLen]

	tag, err := describe(repo, head.Hash())
	if err != nil {
		return api.GitInfo{}, err
	}

	logger.Debugw("detected toolkit revision", "tag", tag, "commit", commit)

	return api.GitInfo{Tag: tag, Commit: commit}, nil
}

// describe walks back from head to the nearest tagged commit, mirroring
// "git describe --tags": the bare tag when HEAD is tagged, otherwise
// "<tag>-<distance>-g<short>".
func describe(repo *git.Repository, head plumbing.Hash) (string, error) {
	tags, err := tagsByCommit(repo)
	if err != nil {
		return "", err
	}
	if len(tags) == 0 {
		return "", errors.Wrap(errors.ErrNoVersionMetadata, "no tags found")
	}

	iter, err := repo.Log(&git.LogOptions{From: head})
	if err != nil {
		return "", errors.Wrapf(errors.ErrNoVersionMetadata,
			"cannot walk history: %v", err)
	}
	defer iter.Close()

	distance := 0
	var described string

	err = iter.ForEach(func(c *object.Commit) error {
		if tag, ok := tags[c.Hash]; ok {
			if distance == 0 {
				described = tag
			} else {
				described = fmt.Sprintf("%s-%d-g%s", tag, distance, head.String()[:shortHashLen])
			}
			return storer.ErrStop
		}
		distance++
		return nil
	})
	if err != nil {
		return "", errors.Wrapf(errors.ErrNoVersionMetadata,
			"cannot walk history: %v", err)
	}

	if described == "" {
		return "", errors.Wrap(errors.ErrNoVersionMetadata,
			"no tag reachable from HEAD")
	}
	return described, nil
}

// tagsByCommit maps each tagged commit hash to its tag name, peeling
// annotated tag objects to their targets.
func tagsByCommit(repo *git.Repository) (map[plumbing.Hash]string, error) {
	tags := make(map[plumbing.Hash]string)

	iter, err := repo.Tags()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNoVersionMetadata,
			"cannot list tags: %v", err)
	}
	defer iter.Close()

	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()

		if tagObj, err := repo.TagObject(ref.Hash()); err == nil {
			tags[tagObj.Target] = name
			return nil
		}
		// Lightweight tag: the ref points at the commit directly
		tags[ref.Hash()] = name
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNoVersionMetadata,
			"cannot read tags: %v", err)
	}

	return tags, nil
}
