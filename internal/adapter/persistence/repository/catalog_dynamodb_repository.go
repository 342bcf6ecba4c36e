package repository

import (
	"context"

	"quotation_service/internal/domain/entities"
	"quotation_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServicesTableName = "services"
	defaultAddonsTableName   = "addons"
	defaultBundlesTableName  = "bundles"
)

type serviceItem struct {
	ID          string   `dynamodbav:"id"`
	Name        string   `dynamodbav:"name"`
	Category    string   `dynamodbav:"category"`
	Description string   `dynamodbav:"description"`
	BasePrice   float64  `dynamodbav:"base_price"`
	Type        string   `dynamodbav:"type"`
	AddonIDs    []string `dynamodbav:"addon_ids"`
	IsActive    bool     `dynamodbav:"is_active"`
	Icon        string   `dynamodbav:"icon,omitempty"`
	CreatedAt   string   `dynamodbav:"created_at"`
	UpdatedAt   string   `dynamodbav:"updated_at"`
}

type addonItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Category    string  `dynamodbav:"category"`
	Description string  `dynamodbav:"description"`
	Price       float64 `dynamodbav:"price"`
	Type        string  `dynamodbav:"type"`
	IsActive    bool    `dynamodbav:"is_active"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

type bundleItem struct {
	ID            string   `dynamodbav:"id"`
	Name          string   `dynamodbav:"name"`
	Description   string   `dynamodbav:"description"`
	ServiceIDs    []string `dynamodbav:"service_ids"`
	AddonIDs      []string `dynamodbav:"addon_ids"`
	DiscountType  string   `dynamodbav:"discount_type"`
	DiscountValue float64  `dynamodbav:"discount_value"`
	IsActive      bool     `dynamodbav:"is_active"`
	CreatedAt     string   `dynamodbav:"created_at"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ServiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoAPI, tableName string) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultServicesTableName)}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}
	ok, err := putExisting(ctx, r.ddb, r.tableName, av)
	if err != nil || !ok {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Service{}, err
	}
	return decodeService(raw)
}

func (r *ServiceDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Service, error) {
	raws, err := batchGet(ctx, r.ddb, r.tableName, ids)
	if err != nil {
		return nil, err
	}
	return decodeAll(raws, decodeService)
}

func (r *ServiceDynamoRepository) ListActive(ctx context.Context) ([]entities.Service, error) {
	raws, err := scanAll(ctx, r.ddb, activeScan(r.tableName))
	if err != nil {
		return nil, err
	}
	return decodeAll(raws, decodeService)
}

func (r *ServiceDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Service, error) {
	raw, err := setActive(ctx, r.ddb, r.tableName, id, active)
	if err != nil || raw == nil {
		return entities.Service{}, err
	}
	return decodeService(raw)
}

// AddonDynamoRepository persists Addon entities in DynamoDB.
type AddonDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAddonRepository = (*AddonDynamoRepository)(nil)

func NewAddonDynamoRepository(ddb DynamoAPI, tableName string) *AddonDynamoRepository {
	return &AddonDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultAddonsTableName)}
}

func (r *AddonDynamoRepository) Create(ctx context.Context, a entities.Addon) (entities.Addon, error) {
	av, err := attributevalue.MarshalMap(toAddonItem(a))
	if err != nil {
		return entities.Addon{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Addon{}, err
	}
	return a, nil
}

func (r *AddonDynamoRepository) Update(ctx context.Context, a entities.Addon) (entities.Addon, error) {
	av, err := attributevalue.MarshalMap(toAddonItem(a))
	if err != nil {
		return entities.Addon{}, err
	}
	ok, err := putExisting(ctx, r.ddb, r.tableName, av)
	if err != nil || !ok {
		return entities.Addon{}, err
	}
	return a, nil
}

func (r *AddonDynamoRepository) GetByID(ctx context.Context, id string) (entities.Addon, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Addon{}, err
	}
	return decodeAddon(raw)
}

func (r *AddonDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Addon, error) {
	raws, err := batchGet(ctx, r.ddb, r.tableName, ids)
	if err != nil {
		return nil, err
	}
	return decodeAll(raws, decodeAddon)
}

func (r *AddonDynamoRepository) ListActive(ctx context.Context) ([]entities.Addon, error) {
	raws, err := scanAll(ctx, r.ddb, activeScan(r.tableName))
	if err != nil {
		return nil, err
	}
	return decodeAll(raws, decodeAddon)
}

func (r *AddonDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Addon, error) {
	raw, err := setActive(ctx, r.ddb, r.tableName, id, active)
	if err != nil || raw == nil {
		return entities.Addon{}, err
	}
	return decodeAddon(raw)
}

// BundleDynamoRepository persists Bundle entities in DynamoDB.
type BundleDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBundleRepository = (*BundleDynamoRepository)(nil)

func NewBundleDynamoRepository(ddb DynamoAPI, tableName string) *BundleDynamoRepository {
	return &BundleDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultBundlesTableName)}
}

func (r *BundleDynamoRepository) Create(ctx context.Context, b entities.Bundle) (entities.Bundle, error) {
	av, err := attributevalue.MarshalMap(toBundleItem(b))
	if err != nil {
		return entities.Bundle{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Bundle{}, err
	}
	return b, nil
}

func (r *BundleDynamoRepository) Update(ctx context.Context, b entities.Bundle) (entities.Bundle, error) {
	av, err := attributevalue.MarshalMap(toBundleItem(b))
	if err != nil {
		return entities.Bundle{}, err
	}
	ok, err := putExisting(ctx, r.ddb, r.tableName, av)
	if err != nil || !ok {
		return entities.Bundle{}, err
	}
	return b, nil
}

func (r *BundleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bundle, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Bundle{}, err
	}
	return decodeBundle(raw)
}

func (r *BundleDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Bundle, error) {
	raws, err := batchGet(ctx, r.ddb, r.tableName, ids)
	if err != nil {
		return nil, err
	}
	return decodeAll(raws, decodeBundle)
}

func (r *BundleDynamoRepository) ListActive(ctx context.Context) ([]entities.Bundle, error) {
	raws, err := scanAll(ctx, r.ddb, activeScan(r.tableName))
	if err != nil {
		return nil, err
	}
	return decodeAll(raws, decodeBundle)
}

func (r *BundleDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Bundle, error) {
	raw, err := setActive(ctx, r.ddb, r.tableName, id, active)
	if err != nil || raw == nil {
		return entities.Bundle{}, err
	}
	return decodeBundle(raw)
}

func decodeAll[T any](raws []map[string]types.AttributeValue, decode func(map[string]types.AttributeValue) (T, error)) ([]T, error) {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := decode(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeService(raw map[string]types.AttributeValue) (entities.Service, error) {
	var it serviceItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func decodeAddon(raw map[string]types.AttributeValue) (entities.Addon, error) {
	var it addonItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Addon{}, err
	}
	return fromAddonItem(it), nil
}

func decodeBundle(raw map[string]types.AttributeValue) (entities.Bundle, error) {
	var it bundleItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Bundle{}, err
	}
	return fromBundleItem(it), nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:          s.ID,
		Name:        s.Name,
		Category:    string(s.Category),
		Description: s.Description,
		BasePrice:   s.BasePrice,
		Type:        string(s.Type),
		AddonIDs:    nonNil(s.AddonIDs),
		IsActive:    s.IsActive,
		Icon:        s.Icon,
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:          it.ID,
		Name:        it.Name,
		Category:    entities.ServiceCategory(it.Category),
		Description: it.Description,
		BasePrice:   it.BasePrice,
		Type:        entities.BillingType(it.Type),
		AddonIDs:    nonNil(it.AddonIDs),
		IsActive:    it.IsActive,
		Icon:        it.Icon,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func toAddonItem(a entities.Addon) addonItem {
	return addonItem{
		ID:          a.ID,
		Name:        a.Name,
		Category:    string(a.Category),
		Description: a.Description,
		Price:       a.Price,
		Type:        string(a.Type),
		IsActive:    a.IsActive,
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
}

func fromAddonItem(it addonItem) entities.Addon {
	return entities.Addon{
		ID:          it.ID,
		Name:        it.Name,
		Category:    entities.ServiceCategory(it.Category),
		Description: it.Description,
		Price:       it.Price,
		Type:        entities.BillingType(it.Type),
		IsActive:    it.IsActive,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func toBundleItem(b entities.Bundle) bundleItem {
	return bundleItem{
		ID:            b.ID,
		Name:          b.Name,
		Description:   b.Description,
		ServiceIDs:    nonNil(b.ServiceIDs),
		AddonIDs:      nonNil(b.AddonIDs),
		DiscountType:  string(b.DiscountType),
		DiscountValue: b.DiscountValue,
		IsActive:      b.IsActive,
		CreatedAt:     formatTime(b.CreatedAt),
		UpdatedAt:     formatTime(b.UpdatedAt),
	}
}

func fromBundleItem(it bundleItem) entities.Bundle {
	return entities.Bundle{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		ServiceIDs:    nonNil(it.ServiceIDs),
		AddonIDs:      nonNil(it.AddonIDs),
		DiscountType:  entities.DiscountType(it.DiscountType),
		DiscountValue: it.DiscountValue,
		IsActive:      it.IsActive,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
