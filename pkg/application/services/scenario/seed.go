package scenario

import (
	"fmt"

	"github.com/vsinha/pricesim/pkg/domain/entities"
	"github.com/vsinha/pricesim/pkg/domain/repositories"
)

// InitializeFromRepository seeds the store's baseline from every collection of repo
func (s *Store) InitializeFromRepository(repo repositories.BaselineRepository) error {
	mpValues, err := repo.GetValueItems(entities.MP)
	if err != nil {
		return fmt.Errorf("failed to read MP values: %w", err)
	}
	mpVolumes, err := repo.GetVolumeItems(entities.MP)
	if err != nil {
		return fmt.Errorf("failed to read MP volumes: %w", err)
	}
	packValues, err := repo.GetValueItems(entities.Packaging)
	if err != nil {
		return fmt.Errorf("failed to read emballage values: %w", err)
	}
	packVolumes, err := repo.GetVolumeItems(entities.Packaging)
	if err != nil {
		return fmt.Errorf("failed to read emballage volumes: %w", err)
	}

	s.InitializeFromExistingData(mpValues, mpVolumes, packValues, packVolumes)
	return nil
}
