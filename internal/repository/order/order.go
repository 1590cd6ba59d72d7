package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{"id::text", "user_id", "total_amount", "status", "created_at", "updated_at"}

type Repository struct {
	querier   Querier
	txManager TxManager
}

func New(querier Querier, txManager TxManager) *Repository {
	return &Repository{
		querier:   querier,
		txManager: txManager,
	}
}

// Create вставляет заказ и его позиции в одной транзакции. ID генерируется здесь,
// created_at/updated_at проставляет БД.
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderEntity.ID = uuid.NewString()
	orderModel, itemModels := FromDomain(&orderEntity)

	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		query := `INSERT INTO orders (id, user_id, total_amount, status)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at, updated_at`

		err := r.querier.QueryRow(
			ctx,
			query,
			orderModel.ID,
			orderModel.UserID,
			orderModel.TotalAmount,
			orderModel.Status,
		).Scan(&orderModel.CreatedAt, &orderModel.UpdatedAt)
		if err != nil {
			return err
		}

		if len(itemModels) == 0 {
			return nil
		}

		builder := qb.
			Insert("order_items").
			Columns("order_id", "position", "product_id", "product_name", "quantity", "price")
		for _, item := range itemModels {
			builder = builder.Values(item.OrderID, item.Position, item.ProductID, item.ProductName, item.Quantity, item.Price)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return err
		}

		_, err = r.querier.Exec(ctx, query, args...)
		return err
	})
	if err != nil {
		// CHECK на вставке - ошибка сервера, а не клиента
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("order repository create, constraint violated: %w", err)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel, itemModels), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns...).
		From("orders").
		OrderBy("created_at", "id")

	orders, err := r.list(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return orders, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id")

	orders, err := r.list(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyuserid error: %w", err)
	}

	return orders, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT id::text, user_id, total_amount, status, created_at, updated_at
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderModel.ID,
			&orderModel.UserID,
			&orderModel.TotalAmount,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if isNotFound(err) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	itemsByOrder, err := r.loadItems(ctx, []string{orderModel.ID})
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel, itemsByOrder[orderModel.ID]), nil
}

// UpdateStatus перезаписывает статус без проверки текущего значения.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatusType) (*entities.Order, error) {
	query, args, err := qb.
		Update("orders").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id::text, user_id, total_amount, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var (
		orderModel   OrderDB
		itemsByOrder map[string][]OrderItemDB
	)
	err = r.txManager.Do(ctx, func(ctx context.Context) error {
		err := r.querier.QueryRow(ctx, query, args...).
			Scan(
				&orderModel.ID,
				&orderModel.UserID,
				&orderModel.TotalAmount,
				&orderModel.Status,
				&orderModel.CreatedAt,
				&orderModel.UpdatedAt,
			)
		if err != nil {
			return err
		}

		itemsByOrder, err = r.loadItems(ctx, []string{orderModel.ID})
		return err
	})
	if err != nil {
		if isNotFound(err) {
			return nil, order.ErrOrderNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, order.ErrInvalidStatus
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel, itemsByOrder[orderModel.ID]), nil
}

// Delete удаляет заказ, позиции уходят каскадом.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		if isNotFound(err) {
			return order.ErrOrderNotFound
		}

		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	query := `SELECT status, COUNT(*)
		FROM orders
		GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64, len(entities.OrderStatuses()))
	for rows.Next() {
		var (
			status string
			count  int64
		)
		err := rows.Scan(&status, &count)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}

	return counts, nil
}

func (r *Repository) list(ctx context.Context, builder sq.SelectBuilder) ([]entities.Order, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.UserID,
			&orderModel.TotalAmount,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(orderModels))
	for i, orderModel := range orderModels {
		ids[i] = orderModel.ID
	}

	itemsByOrder, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	return ToDomainList(orderModels, itemsByOrder), nil
}

// loadItems одним запросом достает позиции всех переданных заказов, сгруппированные по order_id.
func (r *Repository) loadItems(ctx context.Context, orderIDs []string) (map[string][]OrderItemDB, error) {
	itemsByOrder := make(map[string][]OrderItemDB, len(orderIDs))
	if len(orderIDs) == 0 {
		return itemsByOrder, nil
	}

	query, args, err := qb.
		Select("order_id::text", "position", "product_id", "product_name", "quantity", "price").
		From("order_items").
		Where(sq.Expr("order_id = ANY(?::uuid[])", orderIDs)).
		OrderBy("order_id", "position").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(
			&item.OrderID,
			&item.Position,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.Price,
		)
		if err != nil {
			return nil, err
		}
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return itemsByOrder, nil
}

// isNotFound: нет строки или id не является UUID (22P02) - для вызывающего это одно и то же.
func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) ||
		repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation)
}
