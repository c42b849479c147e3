package packing_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tu-usuario/packtrack-api/internal/application/packing"
	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
	"github.com/tu-usuario/packtrack-api/internal/domain/repository"
)

// memStore guarda todo en mapas y sirve como backend compartido de los
// repositorios fake. Los agregados no se almacenan: igual que en Postgres,
// CountByBox y SumQtyByTray recorren las filas fuente en cada llamada.
type memStore struct {
	mu        sync.Mutex
	boxTypes  map[string]*entity.BoxType
	trayTypes map[string]*entity.TrayType
	shipdocs  map[string]*entity.Shipdoc
	boxes     map[string]*entity.Box
	trays     map[string]*entity.Tray
	lots      map[string]*entity.Lot
}

func newMemStore() *memStore {
	return &memStore{
		boxTypes:  map[string]*entity.BoxType{},
		trayTypes: map[string]*entity.TrayType{},
		shipdocs:  map[string]*entity.Shipdoc{},
		boxes:     map[string]*entity.Box{},
		trays:     map[string]*entity.Tray{},
		lots:      map[string]*entity.Lot{},
	}
}

func contains(s, sub string) bool {
	return sub == "" || strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// ── BoxType ───────────────────────────────────────────────────────────────────

type memBoxTypeRepo struct{ s *memStore }

var _ repository.BoxTypeRepository = (*memBoxTypeRepo)(nil)

func (r *memBoxTypeRepo) Create(bt *entity.BoxType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *bt
	r.s.boxTypes[bt.UID] = &cp
	return nil
}

func (r *memBoxTypeRepo) GetByID(uid string) (*entity.BoxType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if bt, ok := r.s.boxTypes[uid]; ok {
		cp := *bt
		return &cp, nil
	}
	return nil, nil
}

func (r *memBoxTypeRepo) GetByPartNumber(pn string) (*entity.BoxType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, bt := range r.s.boxTypes {
		if bt.PartNumber == pn {
			cp := *bt
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memBoxTypeRepo) ListPage(limit, offset int, query string) ([]*entity.BoxType, error) {
	return nil, nil
}
func (r *memBoxTypeRepo) Count(query string) (int, error) { return 0, nil }
func (r *memBoxTypeRepo) InUse(uid string) (bool, error)  { return false, nil }
func (r *memBoxTypeRepo) Delete(uid string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.boxTypes, uid)
	return nil
}

// ── TrayType ──────────────────────────────────────────────────────────────────

type memTrayTypeRepo struct{ s *memStore }

var _ repository.TrayTypeRepository = (*memTrayTypeRepo)(nil)

func (r *memTrayTypeRepo) Create(tt *entity.TrayType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *tt
	r.s.trayTypes[tt.UID] = &cp
	return nil
}

func (r *memTrayTypeRepo) GetByID(uid string) (*entity.TrayType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if tt, ok := r.s.trayTypes[uid]; ok {
		cp := *tt
		return &cp, nil
	}
	return nil, nil
}

func (r *memTrayTypeRepo) GetByPartNumber(pn string) (*entity.TrayType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, tt := range r.s.trayTypes {
		if tt.PartNumber == pn {
			cp := *tt
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memTrayTypeRepo) UpdateMaxDrive(uid string, maxDrive int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if tt, ok := r.s.trayTypes[uid]; ok {
		tt.MaxDrive = maxDrive
	}
	return nil
}

func (r *memTrayTypeRepo) ListPage(limit, offset int, query string) ([]*entity.TrayType, error) {
	return nil, nil
}
func (r *memTrayTypeRepo) Count(query string) (int, error) { return 0, nil }
func (r *memTrayTypeRepo) InUse(uid string) (bool, error)  { return false, nil }
func (r *memTrayTypeRepo) Delete(uid string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.trayTypes, uid)
	return nil
}

// ── Shipdoc ───────────────────────────────────────────────────────────────────

type memShipdocRepo struct{ s *memStore }

var _ repository.ShipdocRepository = (*memShipdocRepo)(nil)

func (r *memShipdocRepo) Create(sd *entity.Shipdoc) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *sd
	r.s.shipdocs[sd.UID] = &cp
	return nil
}

func (r *memShipdocRepo) GetByID(uid string) (*entity.Shipdoc, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sd, ok := r.s.shipdocs[uid]; ok {
		cp := *sd
		return &cp, nil
	}
	return nil, nil
}

func (r *memShipdocRepo) GetByNumber(number string) (*entity.Shipdoc, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sd := range r.s.shipdocs {
		if sd.Number == number {
			cp := *sd
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memShipdocRepo) UpdateContact(uid, contact string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sd, ok := r.s.shipdocs[uid]; ok {
		sd.Contact = contact
	}
	return nil
}

func (r *memShipdocRepo) ListPage(limit, offset int, query string) ([]*entity.Shipdoc, error) {
	return nil, nil
}
func (r *memShipdocRepo) Count(query string) (int, error) { return 0, nil }
func (r *memShipdocRepo) InUse(uid string) (bool, error)  { return false, nil }
func (r *memShipdocRepo) Delete(uid string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.shipdocs, uid)
	return nil
}

// ── Box ───────────────────────────────────────────────────────────────────────

type memBoxRepo struct{ s *memStore }

var _ repository.BoxRepository = (*memBoxRepo)(nil)

func (r *memBoxRepo) Create(b *entity.Box) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *b
	r.s.boxes[b.UID] = &cp
	return nil
}

func (r *memBoxRepo) GetByID(uid string) (*entity.Box, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.boxes[uid]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

// En memoria no hay candado de fila; el fake solo replica la semántica de
// lectura.
func (r *memBoxRepo) GetForUpdate(uid string) (*entity.Box, error) {
	return r.GetByID(uid)
}

func (r *memBoxRepo) UpdateStatus(uid, status string, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.boxes[uid]; ok {
		b.Status = status
		b.UpdatedAt = updatedAt
	}
	return nil
}

func (r *memBoxRepo) Delete(uid string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.boxes, uid)
	// cascada
	for tuid, t := range r.s.trays {
		if t.BoxUID == uid {
			delete(r.s.trays, tuid)
			for luid, l := range r.s.lots {
				if l.TrayUID == tuid {
					delete(r.s.lots, luid)
				}
			}
		}
	}
	return nil
}

func (r *memBoxRepo) summaries(query, status string) []*entity.BoxSummary {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.BoxSummary
	for _, b := range r.s.boxes {
		bt := r.s.boxTypes[b.BoxTypeUID]
		sd := r.s.shipdocs[b.ShipdocUID]
		if bt == nil || sd == nil {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		if !contains(bt.PartNumber, query) && !contains(sd.Number, query) {
			continue
		}
		count := 0
		for _, t := range r.s.trays {
			if t.BoxUID == b.UID {
				count++
			}
		}
		out = append(out, &entity.BoxSummary{
			UID:           b.UID,
			PartNumber:    bt.PartNumber,
			ShipdocNumber: sd.Number,
			Status:        b.Status,
			CurrentTray:   count,
			MaxTray:       bt.MaxTray,
			CreatedAt:     b.CreatedAt,
			UpdatedAt:     b.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].UID < out[j].UID
	})
	return out
}

func (r *memBoxRepo) ListPage(limit, offset int, query, status string) ([]*entity.BoxSummary, error) {
	all := r.summaries(query, status)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memBoxRepo) Count(query, status string) (int, error) {
	return len(r.summaries(query, status)), nil
}

// ── Tray ──────────────────────────────────────────────────────────────────────

type memTrayRepo struct{ s *memStore }

var _ repository.TrayRepository = (*memTrayRepo)(nil)

func (r *memTrayRepo) Create(t *entity.Tray) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *t
	r.s.trays[t.UID] = &cp
	return nil
}

func (r *memTrayRepo) GetByID(uid string) (*entity.Tray, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t, ok := r.s.trays[uid]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (r *memTrayRepo) Delete(uid string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.trays, uid)
	for luid, l := range r.s.lots {
		if l.TrayUID == uid {
			delete(r.s.lots, luid)
		}
	}
	return nil
}

func (r *memTrayRepo) CountByBox(boxUID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, t := range r.s.trays {
		if t.BoxUID == boxUID {
			count++
		}
	}
	return count, nil
}

func (r *memTrayRepo) summaries(boxUID, query string) []*entity.TraySummary {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.TraySummary
	for _, t := range r.s.trays {
		if t.BoxUID != boxUID {
			continue
		}
		tt := r.s.trayTypes[t.TrayTypeUID]
		if tt == nil || !contains(tt.PartNumber, query) {
			continue
		}
		sum := 0
		for _, l := range r.s.lots {
			if l.TrayUID == t.UID {
				sum += l.Qty
			}
		}
		out = append(out, &entity.TraySummary{
			UID:          t.UID,
			PartNumber:   tt.PartNumber,
			BoxUID:       t.BoxUID,
			CurrentDrive: sum,
			MaxDrive:     tt.MaxDrive,
			CreatedAt:    t.CreatedAt,
			UpdatedAt:    t.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].UID < out[j].UID
	})
	return out
}

func (r *memTrayRepo) ListByBoxPage(boxUID string, limit, offset int, query string) ([]*entity.TraySummary, error) {
	all := r.summaries(boxUID, query)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memTrayRepo) CountPageRows(boxUID string, query string) (int, error) {
	return len(r.summaries(boxUID, query)), nil
}

// ── Lot ───────────────────────────────────────────────────────────────────────

type memLotRepo struct{ s *memStore }

var _ repository.LotRepository = (*memLotRepo)(nil)

func (r *memLotRepo) Create(l *entity.Lot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *l
	r.s.lots[l.UID] = &cp
	return nil
}

func (r *memLotRepo) GetByID(uid string) (*entity.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l, ok := r.s.lots[uid]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (r *memLotRepo) UpdateQty(uid string, qty int, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l, ok := r.s.lots[uid]; ok {
		l.Qty = qty
		l.UpdatedAt = updatedAt
	}
	return nil
}

func (r *memLotRepo) Delete(uid string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.lots, uid)
	return nil
}

func (r *memLotRepo) SumQtyByTray(trayUID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sum := 0
	for _, l := range r.s.lots {
		if l.TrayUID == trayUID {
			sum += l.Qty
		}
	}
	return sum, nil
}

func (r *memLotRepo) SumQtyByBox(boxUID string) (int, error) {
	r.s.mu.Lock()
	trayUIDs := map[string]bool{}
	for _, t := range r.s.trays {
		if t.BoxUID == boxUID {
			trayUIDs[t.UID] = true
		}
	}
	sum := 0
	for _, l := range r.s.lots {
		if trayUIDs[l.TrayUID] {
			sum += l.Qty
		}
	}
	r.s.mu.Unlock()
	return sum, nil
}

func (r *memLotRepo) rows(trayUID, query string) []*entity.Lot {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Lot
	for _, l := range r.s.lots {
		if l.TrayUID != trayUID || !contains(l.LotID, query) {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].UID < out[j].UID
	})
	return out
}

func (r *memLotRepo) ListByTrayPage(trayUID string, limit, offset int, query string) ([]*entity.Lot, error) {
	all := r.rows(trayUID, query)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memLotRepo) CountPageRows(trayUID string, query string) (int, error) {
	return len(r.rows(trayUID, query)), nil
}

// ── TxRunner e Invalidator ────────────────────────────────────────────────────

// memTxRunner ejecuta la función directamente sobre los mismos fakes: en
// memoria no hay transacción, pero el flujo del caso de uso es idéntico.
type memTxRunner struct{ s *memStore }

var _ packing.TxRunner = (*memTxRunner)(nil)

func (r *memTxRunner) Run(ctx context.Context, fn func(
	boxRepo repository.BoxRepository,
	trayRepo repository.TrayRepository,
	lotRepo repository.LotRepository,
) error) error {
	return fn(&memBoxRepo{r.s}, &memTrayRepo{r.s}, &memLotRepo{r.s})
}

// recordingInvalidator acumula las señales publicadas para verificarlas.
type recordingInvalidator struct {
	mu      sync.Mutex
	signals []string
}

var _ packing.Invalidator = (*recordingInvalidator)(nil)

func (r *recordingInvalidator) Invalidate(entityName, scopeUID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.signals = append(r.signals, entityName+":"+scopeUID)
}

func (r *recordingInvalidator) has(signal string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.signals {
		if s == signal {
			return true
		}
	}
	return false
}
