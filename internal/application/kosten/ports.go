package kosten

import (
	"context"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

// TxRunner voert een functie uit binnen één DB-transactie en geeft repositories mee
// die aan die transactie gebonden zijn. Garandeert dat een mutatie inclusief de
// bijbehorende voorraadaanpassing als geheel slaagt of als geheel terugrolt.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		urenRepo repository.UrenregistratieRepository,
		inzetRepo repository.MachineInzetRepository,
		mutatieRepo repository.VoorraadMutatieRepository,
		itemRepo repository.VoorraadItemRepository,
	) error) error
}
