// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/salon-pulse/backend/internal/application/usecase/digest"
	"github.com/salon-pulse/backend/internal/application/usecase/forecast"
	"github.com/salon-pulse/backend/internal/application/usecase/preference"
	"github.com/salon-pulse/backend/internal/application/usecase/trends"
	"github.com/salon-pulse/backend/internal/infra/server/router"
	"github.com/salon-pulse/backend/internal/integration/adapters"
	"github.com/salon-pulse/backend/internal/integration/cache"
	"github.com/salon-pulse/backend/internal/integration/email"
	"github.com/salon-pulse/backend/internal/integration/entrypoint/controller"
	"github.com/salon-pulse/backend/internal/integration/entrypoint/middleware"
	"github.com/salon-pulse/backend/internal/integration/persistence"
	"github.com/salon-pulse/backend/internal/integration/persistence/model"
	"github.com/salon-pulse/backend/test/integration/mock"
)

// testContext holds the test state for each scenario.
type testContext struct {
	server   *httptest.Server
	client   *http.Client
	headers  map[string]string
	response *response
	db       *mock.Db

	currentLocationID uuid.UUID
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb("salon_pulse", map[string]any{
			"daily_sales":           &model.SaleModel{},
			"forecast_months":       &model.ForecastMonthModel{},
			"forecast_summaries":    &model.ForecastSummaryModel{},
			"dashboard_preferences": &model.DashboardPreferenceModel{},
			"digest_queue":          &model.DigestQueueModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Sales setup steps
	ctx.Given(`^daily sales exist for each of the last (\d+) days with amount "([^"]*)"$`, test.dailySalesExistForEachOfTheLastDays)
	ctx.Given(`^daily sales exist between (\d+) and (\d+) days ago with amount "([^"]*)"$`, test.dailySalesExistBetweenDaysAgo)
	ctx.Given(`^a sale of "([^"]*)" exists (\d+) days ago at a separate location$`, test.aSaleExistsDaysAgoAtSeparateLocation)

	// Forecast setup steps
	ctx.Given(`^a ready forecast exists for horizon (\d+)$`, test.aReadyForecastExistsForHorizon)

	// Preference setup steps
	ctx.Given(`^stored preferences exist for client "([^"]*)" with chart style "([^"]*)" and horizon (\d+)$`, test.storedPreferencesExistForClient)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.currentLocationID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

// startServer wires the full stack against the sqlite and miniredis mocks and
// exposes it on an httptest server.
func (t *testContext) startServer() {
	if t.server != nil {
		return
	}

	dbConn := t.db.DbConn

	// Create repositories
	salesRepo := persistence.NewSalesRepository(dbConn)
	forecastRepo := persistence.NewForecastRepository(dbConn)
	preferenceRepo := persistence.NewPreferenceRepository(dbConn)
	digestQueueRepo := persistence.NewDigestQueueRepository(dbConn)

	// Create adapters/services. The empty Gemini key keeps insight
	// generation on the stored fallback path.
	comparisonCache := cache.NewRedisComparisonCache(mock.NewRedis())
	insightService := adapters.NewGeminiInsightService("")
	digestService := email.NewService(digestQueueRepo, "http://localhost:5173")

	// Create use cases
	getTrendComparisonUseCase := trends.NewGetTrendComparisonUseCase(salesRepo, comparisonCache)
	getForecastUseCase := forecast.NewGetForecastUseCase(forecastRepo, insightService)
	getPreferencesUseCase := preference.NewGetPreferencesUseCase(preferenceRepo)
	updatePreferencesUseCase := preference.NewUpdatePreferencesUseCase(preferenceRepo)
	queueWeeklyDigestUseCase := digest.NewQueueWeeklyDigestUseCase(getTrendComparisonUseCase, digestService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		return t.db != nil && t.db.DbConn != nil
	})
	trendsController := controller.NewTrendsController(getTrendComparisonUseCase)
	forecastController := controller.NewForecastController(getForecastUseCase)
	preferenceController := controller.NewPreferenceController(getPreferencesUseCase, updatePreferencesUseCase)
	digestController := controller.NewDigestController(queueWeeklyDigestUseCase)

	forecastRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)

	r := router.NewRouter(healthController, trendsController, forecastController, preferenceController, digestController, forecastRateLimiter)
	engine := r.Setup("test")

	t.server = httptest.NewServer(engine)
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

// midnight returns today's local midnight shifted back the given number of
// days, matching how the trends period resolver anchors its ranges.
func midnight(daysAgo int) time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -daysAgo)
}

func (t *testContext) createSale(date time.Time, amount string, locationID *uuid.UUID) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	now := time.Now().UTC()
	sale := &model.SaleModel{
		ID:         uuid.New(),
		LocationID: locationID,
		Date:       date,
		Amount:     value,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return t.db.DbConn.Create(sale).Error
}

func (t *testContext) dailySalesExistForEachOfTheLastDays(days int, amount string) error {
	for i := 0; i < days; i++ {
		if err := t.createSale(midnight(i), amount, nil); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) dailySalesExistBetweenDaysAgo(from, to int, amount string) error {
	if from > to {
		from, to = to, from
	}
	for i := from; i <= to; i++ {
		if err := t.createSale(midnight(i), amount, nil); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) aSaleExistsDaysAgoAtSeparateLocation(amount string, daysAgo int) error {
	if t.currentLocationID == uuid.Nil {
		t.currentLocationID = uuid.New()
	}
	locationID := t.currentLocationID
	return t.createSale(midnight(daysAgo), amount, &locationID)
}

// aReadyForecastExistsForHorizon seeds three actual months, a baseline
// projection for the following month, and the summary row the blend reads.
func (t *testContext) aReadyForecastExistsForHorizon(horizon int) error {
	now := time.Now().UTC()
	months := []struct {
		offset  int
		kind    string
		revenue int64
	}{
		{-3, model.KindActual, 100},
		{-2, model.KindActual, 110},
		{-1, model.KindActual, 120},
		{0, "baseline", 130},
	}

	for _, month := range months {
		period := now.AddDate(0, month.offset, 0).Format("2006-01")
		lower := decimal.NewFromInt(month.revenue - 10)
		upper := decimal.NewFromInt(month.revenue + 10)

		row := &model.ForecastMonthModel{
			ID:           uuid.New(),
			Horizon:      horizon,
			Period:       period,
			Kind:         month.kind,
			Revenue:      decimal.NewFromInt(month.revenue),
			Appointments: int(month.revenue / 10),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if month.kind != model.KindActual {
			row.ConfidenceLower = &lower
			row.ConfidenceUpper = &upper
		}

		if err := t.db.DbConn.Create(row).Error; err != nil {
			return err
		}
	}

	momentum := decimal.NewFromFloat(8.33)
	summary := &model.ForecastSummaryModel{
		ID:               uuid.New(),
		Horizon:          horizon,
		BaseRevenue:      decimal.NewFromInt(130),
		BaseAppointments: 13,
		Momentum:         "accelerating",
		MonthOverMonth:   &momentum,
		MonthsAvailable:  3,
		Insights:         []string{"Stored revenue insight"},
		GeneratedAt:      now,
	}
	return t.db.DbConn.Create(summary).Error
}

func (t *testContext) storedPreferencesExistForClient(clientID, chartStyle string, horizon int) error {
	pref := &model.DashboardPreferenceModel{
		ClientID:   clientID,
		ChartStyle: chartStyle,
		Range:      "90d",
		ViewMode:   "forecast",
		Horizon:    horizon,
		UpdatedAt:  time.Now().UTC(),
	}
	return t.db.DbConn.Create(pref).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	if t.currentLocationID != uuid.Nil {
		content = strings.ReplaceAll(content, "{{location_id}}", t.currentLocationID.String())
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	if t.server == nil {
		return errors.New("test server is not running")
	}

	var req *http.Request
	var err error

	url := t.server.URL + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
