package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/MikeRez0/lavanderia/internal/core/port"
	"github.com/MikeRez0/lavanderia/internal/core/port/mock"
	"github.com/MikeRez0/lavanderia/internal/core/service"
	"github.com/MikeRez0/lavanderia/internal/core/utils"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mocks struct {
	repo      *mock.MockRepository
	tokens    *mock.MockTokenService
	scheduler *mock.MockReconcileScheduler
	metrics   *mock.MockReconcileMetrics
}

type prepareMocks func(m mocks)

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		repo:      mock.NewMockRepository(ctrl),
		tokens:    mock.NewMockTokenService(ctrl),
		scheduler: mock.NewMockReconcileScheduler(ctrl),
		metrics:   mock.NewMockReconcileMetrics(ctrl),
	}
}

func newService(t *testing.T, m mocks, opts ...service.Option) *service.Service {
	t.Helper()
	logger, _ := zap.NewProduction()
	s, err := service.NewService(m.repo, m.tokens, m.scheduler, m.metrics, logger, opts...)
	require.NoError(t, err)
	return s
}

func usdSettings() *domain.Settings {
	return &domain.Settings{
		Principal: domain.CurrencyUSD,
		Rates: domain.ConversionRates{
			domain.CurrencyVES: {Decimal: decimal.MustParse("1250"), Valid: true},
			domain.CurrencyCOP: {},
		},
	}
}

// ledgerStore plays the repository side of UpdateOrderLedger for one order.
type ledgerStore struct {
	order    *domain.Order
	payments []*domain.Payment
	settings *domain.Settings
	nextID   uint64
	writes   int
}

func (ls *ledgerStore) update(_ context.Context, orderID uint64, fn port.UpdateLedgerFn) (*domain.Order, error) {
	if ls.order == nil || orderID != ls.order.ID {
		return nil, domain.ErrDataNotFound
	}
	o := *ls.order
	l := domain.NewLedger(o.ID, ls.payments)
	if err := fn(&o, l, ls.settings); err != nil {
		return nil, err
	}
	for _, p := range l.Added() {
		ls.nextID++
		p.ID = ls.nextID
	}
	ls.payments = l.Payments()
	ls.order = &o
	ls.writes++
	return &o, nil
}

func newLedgerStore(total string) *ledgerStore {
	return &ledgerStore{
		order: &domain.Order{
			ID:         1,
			Currency:   domain.CurrencyUSD,
			Total:      decimal.MustParse(total),
			Abonado:    decimal.Zero,
			Faltante:   decimal.MustParse(total),
			EstadoPago: domain.PaymentStatusIncomplete,
		},
		settings: usdSettings(),
	}
}

func pay(amount string, cur domain.Currency) *domain.Payment {
	return &domain.Payment{
		OrderID:  1,
		Amount:   decimal.MustParse(amount),
		Currency: cur,
		Method:   domain.PaymentMethodTransfer,
	}
}

func assertDerived(t *testing.T, o *domain.Order, abonado, faltante string, status domain.PaymentStatus) {
	t.Helper()
	require.NotNil(t, o)
	assert.Equal(t, abonado, o.Abonado.String())
	assert.Equal(t, faltante, o.Faltante.String())
	assert.Equal(t, status, o.EstadoPago)
}

func TestService_UserRegister(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	user := domain.User{Login: "caja1", Password: "hashed", ID: 1}

	tests := []struct {
		name      string
		user      domain.User
		mock      prepareMocks
		expError  error
		expResult *domain.User
	}{
		{
			name: "Register good",
			user: domain.User{Login: user.Login, Password: "test"},
			mock: func(m mocks) {
				m.repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(nil, domain.ErrDataNotFound)
				m.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
						assert.NoError(t, utils.ComparePassword("test", u.Password))
						return &user, nil
					})
			},
			expResult: &user,
		},
		{
			name: "Register already exists",
			user: domain.User{Login: user.Login, Password: "test"},
			mock: func(m mocks) {
				m.repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError: domain.ErrConflictingData,
		},
		{
			name: "Repository failure",
			user: domain.User{Login: user.Login, Password: "test"},
			mock: func(m mocks) {
				m.repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(nil, errors.New("conn reset"))
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newMocks(mockCtrl)
			test.mock(m)
			s := newService(t, m)

			result, err := s.RegisterUser(context.Background(), &test.user)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_UserLogin(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hashedPass, err := utils.HashPassword("test")
	require.NoError(t, err)
	user := domain.User{Login: "caja1", Password: hashedPass, ID: 1}

	tests := []struct {
		name     string
		login    string
		password string
		mock     prepareMocks
		expToken string
		expError error
	}{
		{
			name:     "Login good",
			login:    user.Login,
			password: "test",
			mock: func(m mocks) {
				m.repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
				m.tokens.EXPECT().CreateToken(&user).Return("token", nil)
			},
			expToken: "token",
		},
		{
			name:     "Password bad",
			login:    user.Login,
			password: "hacker",
			mock: func(m mocks) {
				m.repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Login bad",
			login:    "hacker",
			password: "test",
			mock: func(m mocks) {
				m.repo.EXPECT().GetUserByLogin(gomock.Any(), "hacker").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newMocks(mockCtrl)
			test.mock(m)
			s := newService(t, m)

			token, err := s.LoginUser(context.Background(), test.login, test.password)
			assert.Equal(t, test.expError, err)
			assert.Equal(t, test.expToken, token)
		})
	}
}

func TestService_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	items := []domain.OrderItem{
		{Description: "Lavado por kilo", Quantity: decimal.MustParse("3"), UnitPrice: decimal.MustParse("2.5")},
		{Description: "Planchado camisa", Quantity: decimal.MustParse("2"), UnitPrice: decimal.MustParse("1.125")},
	}

	tests := []struct {
		name        string
		order       domain.Order
		mock        prepareMocks
		expError    error
		expTotal    string
		expStatus   domain.PaymentStatus
		expFaltante string
	}{
		{
			name:  "Create good order",
			order: domain.Order{Client: "Ana", Items: items},
			mock: func(m mocks) {
				m.repo.EXPECT().ReadSettings(gomock.Any()).Return(usdSettings(), nil)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
						o.ID = 10
						return o, nil
					})
			},
			expTotal:    "9.75",
			expStatus:   domain.PaymentStatusIncomplete,
			expFaltante: "9.75",
		},
		{
			name:     "No items",
			order:    domain.Order{Client: "Ana"},
			mock:     func(m mocks) {},
			expError: domain.ErrInvalidItems,
		},
		{
			name: "Zero quantity",
			order: domain.Order{Client: "Ana", Items: []domain.OrderItem{
				{Description: "Edredón", Quantity: decimal.Zero, UnitPrice: decimal.One},
			}},
			mock:     func(m mocks) {},
			expError: domain.ErrInvalidItems,
		},
		{
			name: "Price with more than two decimals",
			order: domain.Order{Client: "Ana", Items: []domain.OrderItem{
				{Description: "Edredón", Quantity: decimal.One, UnitPrice: decimal.MustParse("4.995")},
			}},
			mock:     func(m mocks) {},
			expError: domain.ErrAmountOutOfRange,
		},
		{
			name: "Total too large",
			order: domain.Order{Client: "Ana", Items: []domain.OrderItem{
				{Description: "Edredón", Quantity: decimal.MustParse("100000"), UnitPrice: decimal.MustParse("99999999.99")},
			}},
			mock:     func(m mocks) {},
			expError: domain.ErrAmountOutOfRange,
		},
		{
			name:  "Storage failure",
			order: domain.Order{Client: "Ana", Items: items},
			mock: func(m mocks) {
				m.repo.EXPECT().ReadSettings(gomock.Any()).Return(usdSettings(), nil)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newMocks(mockCtrl)
			test.mock(m)
			s := newService(t, m)

			result, err := s.CreateOrder(context.Background(), &test.order)
			assert.Equal(t, test.expError, err)
			if test.expError != nil {
				assert.Nil(t, result)
				return
			}
			assert.Equal(t, uint64(10), result.ID)
			assert.Equal(t, domain.CurrencyUSD, result.Currency)
			assert.Equal(t, test.expTotal, result.Total.String())
			assertDerived(t, result, "0.00", test.expFaltante, test.expStatus)
		})
	}
}

func TestService_PaymentScenarios(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	m := newMocks(mockCtrl)
	store := newLedgerStore("100.00")
	m.repo.EXPECT().UpdateOrderLedger(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(store.update).AnyTimes()
	m.metrics.EXPECT().ObserveReconciliation(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s := newService(t, m)
	ctx := context.Background()

	// A: 60 USD
	order, err := s.CreatePayment(ctx, pay("60.00", domain.CurrencyUSD))
	require.NoError(t, err)
	assertDerived(t, order, "60.00", "40.00", domain.PaymentStatusIncomplete)

	// B: 50000 VES at 1250
	ves := pay("50000", domain.CurrencyVES)
	order, err = s.CreatePayment(ctx, ves)
	require.NoError(t, err)
	assertDerived(t, order, "100.00", "0.00", domain.PaymentStatusComplete)
	assert.NotZero(t, ves.ID)
	assert.False(t, ves.PaidAt.IsZero())

	// C: delete the VES payment
	order, err = s.DeletePayment(ctx, 1, ves.ID)
	require.NoError(t, err)
	assertDerived(t, order, "60.00", "40.00", domain.PaymentStatusIncomplete)

	// D: COP without a rate counts as zero
	order, err = s.CreatePayment(ctx, pay("100", domain.CurrencyCOP))
	require.NoError(t, err)
	assertDerived(t, order, "60.00", "40.00", domain.PaymentStatusIncomplete)
	assert.Len(t, store.payments, 2)

	// recomputing without changes gives the same result
	again, err := s.ReconcileOrder(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, order.Abonado, again.Abonado)
	assert.Equal(t, order.Faltante, again.Faltante)
	assert.Equal(t, order.EstadoPago, again.EstadoPago)
}

func TestService_UpdatePayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	m := newMocks(mockCtrl)
	store := newLedgerStore("100.00")
	m.repo.EXPECT().UpdateOrderLedger(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(store.update).AnyTimes()
	m.metrics.EXPECT().ObserveReconciliation(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s := newService(t, m)
	ctx := context.Background()

	p := pay("60", domain.CurrencyUSD)
	_, err := s.CreatePayment(ctx, p)
	require.NoError(t, err)

	edited := pay("125000", domain.CurrencyVES)
	edited.ID = p.ID
	order, err := s.UpdatePayment(ctx, edited)
	require.NoError(t, err)
	assertDerived(t, order, "100.00", "0.00", domain.PaymentStatusComplete)
	assert.Equal(t, p.PaidAt, edited.PaidAt)

	missing := pay("1", domain.CurrencyUSD)
	missing.ID = 999
	_, err = s.UpdatePayment(ctx, missing)
	assert.Equal(t, domain.ErrPaymentNotInOrder, err)

	_, err = s.DeletePayment(ctx, 1, 999)
	assert.Equal(t, domain.ErrPaymentNotInOrder, err)
	assert.Equal(t, 2, store.writes)
}

func TestService_PaymentRejected(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		payment  *domain.Payment
		strict   bool
		mock     prepareMocks
		expError error
	}{
		{
			name:    "Non positive amount",
			payment: pay("0", domain.CurrencyUSD),
			mock: func(m mocks) {
				m.metrics.EXPECT().ObserveRejectedPayment(domain.ErrInvalidAmount)
			},
			expError: domain.ErrInvalidAmount,
		},
		{
			name:    "Amount with more than two decimals",
			payment: pay("10.005", domain.CurrencyUSD),
			mock: func(m mocks) {
				m.metrics.EXPECT().ObserveRejectedPayment(domain.ErrAmountOutOfRange)
			},
			expError: domain.ErrAmountOutOfRange,
		},
		{
			name:    "Unknown currency",
			payment: pay("10", "BTC"),
			mock: func(m mocks) {
				m.metrics.EXPECT().ObserveRejectedPayment(domain.ErrUnknownCurrency)
			},
			expError: domain.ErrUnknownCurrency,
		},
		{
			name:    "Strict mode without rate",
			payment: pay("100", domain.CurrencyCOP),
			strict:  true,
			mock: func(m mocks) {
				store := newLedgerStore("10")
				m.repo.EXPECT().UpdateOrderLedger(gomock.Any(), uint64(1), gomock.Any()).DoAndReturn(store.update)
				m.metrics.EXPECT().ObserveRejectedPayment(domain.ErrUnconvertibleCurrency)
			},
			expError: domain.ErrUnconvertibleCurrency,
		},
		{
			name:    "Order not found",
			payment: &domain.Payment{OrderID: 5, Amount: decimal.One, Currency: domain.CurrencyUSD, Method: domain.PaymentMethodZelle},
			mock: func(m mocks) {
				store := newLedgerStore("10")
				m.repo.EXPECT().UpdateOrderLedger(gomock.Any(), uint64(5), gomock.Any()).DoAndReturn(store.update)
			},
			expError: domain.ErrDataNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newMocks(mockCtrl)
			test.mock(m)
			s := newService(t, m, service.WithStrictRates(test.strict))

			result, err := s.CreatePayment(context.Background(), test.payment)
			assert.Nil(t, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_ReconcileOrder_PrincipalChanged(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	m := newMocks(mockCtrl)
	store := newLedgerStore("125000")
	store.order.Currency = domain.CurrencyVES
	store.payments = []*domain.Payment{{ID: 1, OrderID: 1, Amount: decimal.MustParse("60"),
		Currency: domain.CurrencyUSD, Method: domain.PaymentMethodZelle}}
	m.repo.EXPECT().UpdateOrderLedger(gomock.Any(), uint64(1), gomock.Any()).DoAndReturn(store.update).Times(2)
	m.metrics.EXPECT().ObserveReconciliation(gomock.Any(), gomock.Any(), 1)
	s := newService(t, m)

	order, err := s.ReconcileOrder(context.Background(), 1)
	require.NoError(t, err)
	assertDerived(t, order, "60.00", "40.00", domain.PaymentStatusIncomplete)

	store.settings.Rates = domain.ConversionRates{}
	_, err = s.ReconcileOrder(context.Background(), 1)
	assert.Equal(t, domain.ErrUnconvertibleCurrency, err)
}

func TestService_GetOrderBalance(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	m := newMocks(mockCtrl)
	order := &domain.Order{ID: 1, Total: decimal.Hundred, Abonado: decimal.MustParse("60.00"),
		Faltante: decimal.MustParse("40.00"), EstadoPago: domain.PaymentStatusIncomplete}
	m.repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).Return(order, nil)
	m.repo.EXPECT().ReadSettings(gomock.Any()).Return(usdSettings(), nil)
	s := newService(t, m)

	balance, err := s.GetOrderBalance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyUSD, balance.Principal)
	assert.Equal(t, "50000.00", balance.FaltanteIn[domain.CurrencyVES].String())
	assert.Len(t, balance.FaltanteIn, 1)
	assert.Equal(t, []domain.Currency{domain.CurrencyCOP, domain.CurrencyEUR}, balance.Unconvertible)

	m.repo.EXPECT().ReadOrder(gomock.Any(), uint64(2)).Return(nil, domain.ErrDataNotFound)
	_, err = s.GetOrderBalance(context.Background(), 2)
	assert.Equal(t, domain.ErrDataNotFound, err)
}

func TestService_UpdateSettings(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		settings *domain.Settings
		mock     prepareMocks
		expError error
	}{
		{
			name:     "Valid settings queue every order",
			settings: usdSettings(),
			mock: func(m mocks) {
				m.repo.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *domain.Settings) (*domain.Settings, error) {
						return s, nil
					})
				m.repo.EXPECT().ListOrderIDs(gomock.Any(), domain.OrderFilter{}).Return([]uint64{3, 4}, nil)
				m.scheduler.EXPECT().ScheduleOrderReconcile(uint64(3))
				m.scheduler.EXPECT().ScheduleOrderReconcile(uint64(4))
			},
		},
		{
			name: "Negative rate",
			settings: &domain.Settings{Principal: domain.CurrencyUSD, Rates: domain.ConversionRates{
				domain.CurrencyVES: {Decimal: decimal.MustParse("-3"), Valid: true},
			}},
			mock:     func(m mocks) {},
			expError: domain.ErrInvalidRate,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newMocks(mockCtrl)
			test.mock(m)
			s := newService(t, m)

			result, err := s.UpdateSettings(context.Background(), test.settings)
			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.False(t, result.UpdatedAt.IsZero())
			}
		})
	}
}

func TestService_ListOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	m := newMocks(mockCtrl)
	filter := domain.OrderFilter{EstadoPago: domain.PaymentStatusIncomplete}
	m.repo.EXPECT().ListOrders(gomock.Any(), filter).Return([]*domain.Order{{ID: 1}}, nil)
	s := newService(t, m)

	list, err := s.ListOrders(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = s.ListOrders(context.Background(), domain.OrderFilter{EstadoPago: "PAGADO"})
	assert.Equal(t, domain.ErrBadRequest, err)
}
