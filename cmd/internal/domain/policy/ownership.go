package policy

import (
	"errors"

	"gorm.io/gorm"

	"prospecta/cmd/internal/domain/entity"
)

// OwnershipGuard resolves whether a tenant-scoped record belongs to the
// acting user by tracing its foreign-key chain up to the owning User in
// a single query. Every method takes the *gorm.DB to run against, so a
// caller inside a transaction gets the check and the mutation on the
// same snapshot.
//
// All methods return (nil, nil) both when the record does not exist and
// when it exists under another tenant. Callers translate that uniformly
// to a not-found outcome; existence is never disclosed to non-owners.
type OwnershipGuard struct{}

func NewOwnershipGuard() *OwnershipGuard {
	return &OwnershipGuard{}
}

// Lead is directly owned: lead.user_id must match.
func (g *OwnershipGuard) Lead(tx *gorm.DB, leadID, userID int64) (*entity.Lead, error) {
	var lead entity.Lead
	err := tx.
		Where("id = ? AND user_id = ?", leadID, userID).
		First(&lead).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// Negocio is directly owned: negocio.user_id must match.
func (g *OwnershipGuard) Negocio(tx *gorm.DB, negocioID, userID int64) (*entity.Negocio, error) {
	var negocio entity.Negocio
	err := tx.
		Where("id = ? AND user_id = ?", negocioID, userID).
		First(&negocio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &negocio, nil
}

// Lembrete chains Lembrete -> Lead -> User.
func (g *OwnershipGuard) Lembrete(tx *gorm.DB, lembreteID, userID int64) (*entity.Lembrete, error) {
	var lembrete entity.Lembrete
	err := tx.
		Joins("JOIN leads ON leads.id = lembretes.lead_id").
		Where("lembretes.id = ? AND leads.user_id = ?", lembreteID, userID).
		First(&lembrete).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lembrete, nil
}

// Atividade chains Atividade -> Lead -> User.
func (g *OwnershipGuard) Atividade(tx *gorm.DB, atividadeID, userID int64) (*entity.Atividade, error) {
	var atividade entity.Atividade
	err := tx.
		Joins("JOIN leads ON leads.id = atividades.lead_id").
		Where("atividades.id = ? AND leads.user_id = ?", atividadeID, userID).
		First(&atividade).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &atividade, nil
}

// Proposta chains Proposta -> Negocio -> User.
func (g *OwnershipGuard) Proposta(tx *gorm.DB, propostaID, userID int64) (*entity.Proposta, error) {
	var proposta entity.Proposta
	err := tx.
		Joins("JOIN negocios ON negocios.id = propostas.negocio_id").
		Where("propostas.id = ? AND negocios.user_id = ?", propostaID, userID).
		First(&proposta).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &proposta, nil
}

// Contato chains Contato -> Empresa -> Lead -> User. The Empresa row is
// shared across tenants, so reachability means "some lead of this user
// references the contato's empresa".
func (g *OwnershipGuard) Contato(tx *gorm.DB, contatoID, userID int64) (*entity.Contato, error) {
	var contato entity.Contato
	err := tx.
		Where("id = ? AND EXISTS (SELECT 1 FROM leads WHERE leads.empresa_id = contatos.empresa_id AND leads.user_id = ?)",
			contatoID, userID).
		First(&contato).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contato, nil
}

// Empresa is never owned directly; it is visible to a user only through
// an owning lead that references it. Used to gate contact creation.
func (g *OwnershipGuard) Empresa(tx *gorm.DB, empresaID, userID int64) (*entity.Empresa, error) {
	var empresa entity.Empresa
	err := tx.
		Where("id = ? AND EXISTS (SELECT 1 FROM leads WHERE leads.empresa_id = empresas.id AND leads.user_id = ?)",
			empresaID, userID).
		First(&empresa).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &empresa, nil
}
