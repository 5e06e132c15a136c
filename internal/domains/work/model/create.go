package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"stillform-backend/internal/shared/apperror"
	"stillform-backend/internal/shared/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// probabilityEpsilon is the tolerance on the blind-box probability total
const probabilityEpsilon = 0.001

// Draft is a create-work payload. It is either a StandardDraft or a
// BlindboxDraft; consumers switch on the concrete type.
type Draft interface {
	Kind() WorkType
	Validate() error
	isDraft()
}

type EditionDraft struct {
	Price decimal.Decimal `json:"price"`
	// float64 so that fractional supplies reach validation instead of failing decode
	Supply   float64 `json:"supply"`
	Currency string  `json:"currency,omitempty"`
}

func (e EditionDraft) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Price, validation.By(positiveDecimal)),
		validation.Field(&e.Supply, validation.By(positiveInteger)),
	)
}

type StyleDraft struct {
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
	MediaURL    string  `json:"mediaUrl,omitempty"`
	Rarity      string  `json:"rarity,omitempty"`
}

func (s StyleDraft) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required.Error("Style name is required.")),
		validation.Field(&s.Probability, validation.Required, validation.Min(0.01), validation.Max(100.0)),
	)
}

// DraftCommon holds the fields shared by both draft kinds
type DraftCommon struct {
	WorkType        WorkType       `json:"workType"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Editions        []EditionDraft `json:"editions"`
	Tags            []string       `json:"tags,omitempty"`
	Media           []Media        `json:"media,omitempty"`
	Chain           *Chain         `json:"chain,omitempty"`
	Creator         *Creator       `json:"creator,omitempty"`
	PhysicalOptions []string       `json:"physicalOptions,omitempty"`
}

func (c DraftCommon) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title,
			validation.Required.Error("Title must be at least 3 characters long."),
			validation.RuneLength(3, 0).Error("Title must be at least 3 characters long.")),
		validation.Field(&c.Description,
			validation.Required.Error("Description must be at least 10 characters long."),
			validation.RuneLength(10, 0).Error("Description must be at least 10 characters long.")),
		validation.Field(&c.Editions,
			validation.Required.Error("At least one edition is required."),
			validation.Length(1, 0).Error("At least one edition is required.")),
		validation.Field(&c.Chain, validation.By(validChain)),
	)
}

type StandardDraft struct {
	DraftCommon
}

func (StandardDraft) Kind() WorkType { return TypeStandard }
func (StandardDraft) isDraft()       {}

func (d StandardDraft) Validate() error {
	return d.DraftCommon.Validate()
}

type BlindboxDraft struct {
	DraftCommon
	BlindboxStyles []StyleDraft `json:"blindboxStyles"`
}

func (BlindboxDraft) Kind() WorkType { return TypeBlindbox }
func (BlindboxDraft) isDraft()       {}

func (d BlindboxDraft) Validate() error {
	errs := validation.Errors{}

	if err := d.DraftCommon.Validate(); err != nil {
		var common validation.Errors
		if !errors.As(err, &common) {
			return err
		}
		for k, v := range common {
			errs[k] = v
		}
	}

	errs["blindboxStyles"] = validation.Validate(d.BlindboxStyles,
		validation.Required.Error("At least two styles are required for a blind box."),
		validation.Length(2, 0).Error("At least two styles are required for a blind box."),
		validation.By(totalProbability),
	)

	return errs.Filter()
}

// DecodeDraft picks the draft variant from the workType discriminator
func DecodeDraft(raw []byte) (Draft, error) {
	var head struct {
		WorkType WorkType `json:"workType"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, apperror.Validation("VALIDATION_ERROR", "Validation Error", map[string]string{"_": "invalid JSON body"})
	}

	switch head.WorkType {
	case TypeStandard:
		var d StandardDraft
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, decodeError(err)
		}
		return d, nil
	case TypeBlindbox:
		var d BlindboxDraft
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, decodeError(err)
		}
		return d, nil
	default:
		return nil, apperror.Validation("VALIDATION_ERROR", "Validation Error", map[string]string{
			"workType": "must be standard or blindbox",
		})
	}
}

// ValidateDraft runs the variant's rules and converts failures into a ValidationError
func ValidateDraft(d Draft) error {
	if err := d.Validate(); err != nil {
		var ve validation.Errors
		if errors.As(err, &ve) {
			return apperror.ValidationFrom("VALIDATION_ERROR", "Validation Error", err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidWorkPayload, err)
	}
	return nil
}

// Common returns the shared fields of any draft
func Common(d Draft) DraftCommon {
	switch v := d.(type) {
	case StandardDraft:
		return v.DraftCommon
	case BlindboxDraft:
		return v.DraftCommon
	default:
		panic(fmt.Sprintf("unknown draft type %T", d))
	}
}

// BuildWork turns a validated draft into a draft-status Work
func BuildWork(d Draft, id string, createdAt time.Time) Work {
	common := Common(d)

	w := Work{
		ID:              id,
		Slug:            utils.GenerateSlug(common.Title) + "-" + strings.TrimPrefix(id, "work_"),
		Title:           common.Title,
		Description:     common.Description,
		Tags:            nonNil(common.Tags),
		Media:           common.Media,
		Status:          StatusDraft,
		Type:            d.Kind(),
		PhysicalOptions: nonNil(common.PhysicalOptions),
		CreatedAt:       createdAt.UTC(),
		Chain:           Chain{Type: ChainEVM},
	}
	if w.Media == nil {
		w.Media = []Media{}
	}
	if common.Chain != nil {
		w.Chain = *common.Chain
	}
	if common.Creator != nil {
		w.Creator = *common.Creator
	}

	defaultCurrency := "ETH"
	if w.Chain.Type == ChainSui {
		defaultCurrency = "SUI"
	}
	for i, e := range common.Editions {
		currency := e.Currency
		if currency == "" {
			currency = defaultCurrency
		}
		w.Editions = append(w.Editions, Edition{
			EditionID: i + 1,
			Supply:    int(e.Supply),
			Price:     e.Price,
			Currency:  currency,
		})
	}

	switch v := d.(type) {
	case StandardDraft:
	case BlindboxDraft:
		for _, s := range v.BlindboxStyles {
			w.BlindboxStyles = append(w.BlindboxStyles, BlindboxStyle{
				Name:        s.Name,
				MediaURL:    s.MediaURL,
				Rarity:      s.Rarity,
				Probability: s.Probability,
			})
		}
	default:
		panic(fmt.Sprintf("unknown draft type %T", d))
	}

	return w
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// CreateWorkResponse echoes the payload with the assigned id, slug and status
type CreateWorkResponse struct {
	ID     string
	Slug   string
	Status Status
	Draft  Draft
}

func (r CreateWorkResponse) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(r.Draft)
	if err != nil {
		return nil, err
	}
	body := map[string]interface{}{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	body["id"] = r.ID
	body["slug"] = r.Slug
	body["status"] = r.Status
	return json.Marshal(body)
}

// WithMedia returns a copy of d whose first media item is m
func WithMedia(d Draft, m Media) Draft {
	switch v := d.(type) {
	case StandardDraft:
		v.Media = append([]Media{m}, v.Media...)
		return v
	case BlindboxDraft:
		v.Media = append([]Media{m}, v.Media...)
		return v
	default:
		panic(fmt.Sprintf("unknown draft type %T", d))
	}
}

// WithCreator fills the creator when the payload did not carry one
func WithCreator(d Draft, c Creator) Draft {
	switch v := d.(type) {
	case StandardDraft:
		if v.Creator == nil {
			v.Creator = &c
		}
		return v
	case BlindboxDraft:
		if v.Creator == nil {
			v.Creator = &c
		}
		return v
	default:
		panic(fmt.Sprintf("unknown draft type %T", d))
	}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperror.Validation("VALIDATION_ERROR", "Validation Error", map[string]string{
			typeErr.Field: fmt.Sprintf("must be a %s", typeErr.Type.String()),
		})
	}
	return apperror.Validation("VALIDATION_ERROR", "Validation Error", map[string]string{"_": err.Error()})
}

// ============ RULES ============

func positiveDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || !d.IsPositive() {
		return errors.New("must be greater than 0")
	}
	return nil
}

func positiveInteger(value interface{}) error {
	n, ok := value.(float64)
	if !ok || n <= 0 || n != math.Trunc(n) {
		return errors.New("must be a positive integer")
	}
	return nil
}

func totalProbability(value interface{}) error {
	styles, _ := value.([]StyleDraft)
	var total float64
	for _, s := range styles {
		total += s.Probability
	}
	if math.Abs(total-100) >= probabilityEpsilon {
		return errors.New("Total probability of all styles must be exactly 100%")
	}
	return nil
}

func validChain(value interface{}) error {
	c, _ := value.(*Chain)
	if c == nil {
		return nil
	}
	if c.Type != ChainEVM && c.Type != ChainSui {
		return errors.New("type must be evm or sui")
	}
	if c.ContractAddress != "" && c.Type == ChainEVM && !isHexAddress(c.ContractAddress) {
		return errors.New("contractAddress must be a 0x-prefixed 20-byte hex address")
	}
	return nil
}

func isHexAddress(s string) bool {
	if len(s) != 42 || !strings.HasPrefix(strings.ToLower(s), "0x") {
		return false
	}
	for _, r := range s[2:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
