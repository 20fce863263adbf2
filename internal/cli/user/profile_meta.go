package user

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ProfileMeta contains the name and full filepath of a profile
type ProfileMeta struct {
	Name     string
	Filepath string
}

// Profiles returns a list of each profile meta containing name and filepath
func Profiles() ([]ProfileMeta, error) {
	dir, dirErr := HomeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to get CLI profiles: %w", dirErr)
	}
	return ProfilesIn(afero.NewOsFs(), dir)
}

// ProfilesIn returns the profile metas found in the directory
func ProfilesIn(fs afero.Fs, dir string) ([]ProfileMeta, error) {
	dirEntryList, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ProfileMeta{}, nil
		}
		return nil, fmt.Errorf("failed to get CLI profiles: %w", err)
	}

	profileMetas := make([]ProfileMeta, 0, len(dirEntryList))
	for _, v := range dirEntryList {
		if v.IsDir() || filepath.Ext(v.Name()) != "."+ProfileType {
			continue
		}
		profileMetas = append(profileMetas, ProfileMeta{
			Name:     strings.TrimSuffix(v.Name(), filepath.Ext(v.Name())),
			Filepath: filepath.Join(dir, v.Name()),
		})
	}

	return profileMetas, nil
}
