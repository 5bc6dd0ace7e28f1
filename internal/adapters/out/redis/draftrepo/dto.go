package draftrepo

import (
	"configurator/internal/core/domain/model/customer"
	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/plan"
	"configurator/internal/core/domain/model/selection"
	"configurator/internal/core/domain/model/wizard"
)

// DraftDTO is the JSON document stored under a draft key.
type DraftDTO struct {
	ID         string      `json:"id"`
	Step       string      `json:"step"`
	Plan       *PlanDTO    `json:"plan,omitempty"`
	Figures    []FigureDTO `json:"figures,omitempty"`
	PetID      int64       `json:"petId,omitempty"`
	Background int64       `json:"backgroundId,omitempty"`
	CustomBg   string      `json:"customBackground,omitempty"`
	Contact    ContactDTO  `json:"contact"`
	HasInfo    bool        `json:"hasInfo"`
	Submitting bool        `json:"submitting"`
	LastError  string      `json:"lastError,omitempty"`
	OrderID    int64       `json:"orderId,omitempty"`
}

type PlanDTO struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Price            int64  `json:"price"`
	MaxFigures       int    `json:"maxFigures"`
	MaxAccsPerFigure int    `json:"maxAccsPerFigure"`
	AccExtraCost     int64  `json:"accExtraCost"`
	AllowsExtra      bool   `json:"allowsExtra"`
}

type FigureDTO struct {
	Sex         string  `json:"sex,omitempty"`
	Hair        int64   `json:"hair,omitempty"`
	Face        int64   `json:"face,omitempty"`
	Body        int64   `json:"body,omitempty"`
	Legs        int64   `json:"legs,omitempty"`
	Accessories []int64 `json:"accessories,omitempty"`
}

type ContactDTO struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	RUT     string `json:"rut,omitempty"`
	Region  string `json:"region,omitempty"`
	Comuna  string `json:"comuna,omitempty"`
	Address string `json:"address,omitempty"`
	Note    string `json:"note,omitempty"`
}

func fromDomain(d wizard.Draft) DraftDTO {
	p := d.Params()
	dto := DraftDTO{
		ID:         p.ID.String(),
		Step:       p.Step.String(),
		PetID:      int64(p.PetID),
		Background: int64(p.Background),
		CustomBg:   p.CustomBg,
		Contact:    ContactDTO(p.Contact),
		HasInfo:    p.HasInfo,
		Submitting: p.Submitting,
		LastError:  p.LastError,
		OrderID:    p.OrderID,
	}
	if p.Plan != nil {
		pl := PlanDTO(*p.Plan)
		dto.Plan = &pl
	}
	for _, f := range p.Figures {
		accs := make([]int64, 0, len(f.Accessories))
		for _, id := range f.Accessories {
			accs = append(accs, int64(id))
		}
		dto.Figures = append(dto.Figures, FigureDTO{
			Sex:         f.Sex.String(),
			Hair:        int64(f.Hair),
			Face:        int64(f.Face),
			Body:        int64(f.Body),
			Legs:        int64(f.Legs),
			Accessories: accs,
		})
	}
	return dto
}

func toDomain(dto DraftDTO) (wizard.Draft, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return wizard.Draft{}, err
	}
	step, err := wizard.ParseStep(dto.Step)
	if err != nil {
		return wizard.Draft{}, err
	}

	p := wizard.Params{
		ID:         id,
		Step:       step,
		PetID:      selection.ItemID(dto.PetID),
		Background: selection.ItemID(dto.Background),
		CustomBg:   dto.CustomBg,
		Contact:    customer.Form(dto.Contact),
		HasInfo:    dto.HasInfo,
		Submitting: dto.Submitting,
		LastError:  dto.LastError,
		OrderID:    dto.OrderID,
	}
	if dto.Plan != nil {
		pp := plan.Params(*dto.Plan)
		p.Plan = &pp
	}
	for _, f := range dto.Figures {
		sex, err := selection.ParseSex(f.Sex)
		if err != nil {
			return wizard.Draft{}, err
		}
		accs := make([]selection.ItemID, 0, len(f.Accessories))
		for _, id := range f.Accessories {
			accs = append(accs, selection.ItemID(id))
		}
		p.Figures = append(p.Figures, selection.FigureParams{
			Sex:         sex,
			Hair:        selection.ItemID(f.Hair),
			Face:        selection.ItemID(f.Face),
			Body:        selection.ItemID(f.Body),
			Legs:        selection.ItemID(f.Legs),
			Accessories: accs,
		})
	}

	return wizard.RestoreDraft(p)
}
