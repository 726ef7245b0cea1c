package listing

import (
	"context"
	"errors"
	"io"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/anonto42/car-blog/backend/internal/catalog"
	"github.com/anonto42/car-blog/backend/internal/models"
	"github.com/anonto42/car-blog/backend/internal/repositories"
	"github.com/anonto42/car-blog/backend/pkg/logger"
)

// Mock repositories for testing

type mockPostRepository struct {
	posts []models.Post
}

func (m *mockPostRepository) ListPosts(ctx context.Context) []models.Post { return m.posts }
func (m *mockPostRepository) GetPost(ctx context.Context, id int) *models.Post {
	for _, p := range m.posts {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
func (m *mockPostRepository) LatestPosts(ctx context.Context, n int) []models.Post {
	return m.posts[:min(n, len(m.posts))]
}

type mockUserRepository struct {
	mu        sync.Mutex
	users     map[int]models.User
	requested []int
}

func (m *mockUserRepository) GetUser(ctx context.Context, id int) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requested = append(m.requested, id)
	if u, ok := m.users[id]; ok {
		return &u
	}
	return nil
}

type mockCarRepository struct {
	cars     []models.Car
	panicMsg string
}

func (m *mockCarRepository) ListCars(ctx context.Context) []models.Car {
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	return m.cars
}
func (m *mockCarRepository) GetCar(ctx context.Context, id int) *models.Car { return nil }
func (m *mockCarRepository) ListCarsByModel(ctx context.Context, model string) []models.Car {
	return nil
}
func (m *mockCarRepository) ListCarsByBrand(ctx context.Context, brand string) []models.Car {
	return nil
}
func (m *mockCarRepository) ListCarsByYear(ctx context.Context, year int, op repositories.YearOperator) []models.Car {
	return nil
}
func (m *mockCarRepository) ListBrands(ctx context.Context) []string {
	return catalog.Brands(m.cars)
}

var testCars = []models.Car{
	{ID: 1, Brand: "BMW", Model: "X5", Year: 2024, Availability: true},
	{ID: 2, Brand: "Tesla", Model: "Model S", Year: 2024, Availability: true},
	{ID: 3, Brand: "Audi", Model: "Q7", Year: 2024, Availability: false},
}

func makePosts(n int) []models.Post {
	posts := make([]models.Post, n)
	for i := range posts {
		id := i + 1
		posts[i] = models.Post{ID: id, Title: "post", Body: "body", UserID: (id-1)/10 + 1}
	}
	return posts
}

func newTestController(t *testing.T, n int, opts Options) (*Controller, *mockUserRepository) {
	t.Helper()
	users := &mockUserRepository{users: map[int]models.User{
		1: {ID: 1, Name: "Alex Thompson"},
		2: {ID: 2, Name: "Maria Garcia"},
		3: {ID: 3, Name: "David Kim"},
	}}
	c := NewController(
		&mockPostRepository{posts: makePosts(n)},
		users,
		&mockCarRepository{cars: testCars},
		logger.New(io.Discard),
		opts,
	)
	t.Cleanup(c.Close)
	return c, users
}

func immediate() Options {
	opts := DefaultOptions()
	opts.SearchDebounce = 0
	return opts
}

func TestLoadReady(t *testing.T) {
	c, users := newTestController(t, 45, immediate())
	if c.Status() != StatusLoading {
		t.Fatalf("expected loading before Load, got %s", c.Status())
	}

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := c.Snapshot()
	if v.Status != StatusReady || v.Error != "" {
		t.Fatalf("expected ready, got %s (%q)", v.Status, v.Error)
	}
	if v.Shown != 20 || v.Total != 45 || !v.HasMore || len(v.Posts) != 20 {
		t.Fatalf("unexpected page: shown=%d total=%d more=%v posts=%d", v.Shown, v.Total, v.HasMore, len(v.Posts))
	}
	if v.CategoryCounts["All"] != 45 || v.CategoryCounts["SUV"] != 30 || v.CategoryCounts["Electric"] != 15 {
		t.Fatalf("unexpected category counts %v", v.CategoryCounts)
	}
	if v.BrandCounts["BMW"] != 15 || v.BrandCounts["All"] != 45 {
		t.Fatalf("unexpected brand counts %v", v.BrandCounts)
	}
	if !reflect.DeepEqual(v.Brands, []string{"All", "Audi", "BMW", "Tesla"}) {
		t.Fatalf("unexpected brands %v", v.Brands)
	}

	users.mu.Lock()
	requested := len(users.requested)
	users.mu.Unlock()
	if requested != 2 {
		t.Fatalf("expected one lookup per author of the first 20 posts, got %d", requested)
	}
	if v.Posts[0].Author == nil || v.Posts[0].Author.Name != "Alex Thompson" {
		t.Fatalf("expected author on first post, got %+v", v.Posts[0].Author)
	}
	if v.Posts[0].Image == "" || v.Posts[0].Avatar == "" {
		t.Fatal("expected image and avatar on first post")
	}
}

func TestLoadWithoutPostsIsError(t *testing.T) {
	c, _ := newTestController(t, 0, immediate())

	err := c.Load(context.Background())
	if !errors.Is(err, ErrNoPosts) {
		t.Fatalf("expected ErrNoPosts, got %v", err)
	}
	v := c.Snapshot()
	if v.Status != StatusError || v.Error != "No blog posts available" {
		t.Fatalf("unexpected state %s %q", v.Status, v.Error)
	}
}

func TestLoadPanicBecomesError(t *testing.T) {
	c := NewController(
		&mockPostRepository{posts: makePosts(3)},
		&mockUserRepository{},
		&mockCarRepository{panicMsg: "boom"},
		logger.New(io.Discard),
		immediate(),
	)
	defer c.Close()

	err := c.Load(context.Background())
	if !errors.Is(err, ErrLoadPanicked) {
		t.Fatalf("expected ErrLoadPanicked, got %v", err)
	}
	v := c.Snapshot()
	if v.Status != StatusError || v.Error != "Failed to load blog posts. Please try again." {
		t.Fatalf("unexpected state %s %q", v.Status, v.Error)
	}
}

func TestFilters(t *testing.T) {
	c, _ := newTestController(t, 45, immediate())
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := c.SetCategory("SUV"); err != nil {
		t.Fatal(err)
	}
	if got := c.Snapshot().Total; got != 30 {
		t.Fatalf("SUV: expected 30, got %d", got)
	}

	c.SetAvailableOnly(true)
	if got := c.Snapshot().Total; got != 15 {
		t.Fatalf("SUV + available: expected 15, got %d", got)
	}

	c.SetBrand("Audi")
	if got := c.Snapshot().Total; got != 0 {
		t.Fatalf("SUV + available + Audi: expected 0, got %d", got)
	}

	all := "All"
	only := false
	if err := c.Update(Patch{Category: &all, Brand: &all, AvailableOnly: &only}); err != nil {
		t.Fatal(err)
	}
	if got := c.Snapshot().Total; got != 45 {
		t.Fatalf("cleared: expected 45, got %d", got)
	}
}

func TestSetCategoryRejectsUnknown(t *testing.T) {
	c, _ := newTestController(t, 5, immediate())
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := c.SetCategory("Boats"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if got := c.Snapshot().Filters.Category; got != "All" {
		t.Fatalf("expected category unchanged, got %q", got)
	}
}

func TestSearchIsDebounced(t *testing.T) {
	opts := DefaultOptions()
	opts.SearchDebounce = time.Hour
	c, _ := newTestController(t, 45, opts)
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	c.SetSearch("tes")
	c.SetSearch("tesla")

	v := c.Snapshot()
	if v.SearchInput != "tesla" || v.Filters.Search != "" || v.Total != 45 {
		t.Fatalf("expected search pending, got input=%q applied=%q total=%d", v.SearchInput, v.Filters.Search, v.Total)
	}

	if !c.FlushSearch() {
		t.Fatal("expected a pending search")
	}
	v = c.Snapshot()
	if v.Filters.Search != "tesla" || v.Total != 15 {
		t.Fatalf("expected tesla applied, got applied=%q total=%d", v.Filters.Search, v.Total)
	}
	if v.Heading != `Car Blog Posts for "tesla"` {
		t.Fatalf("unexpected heading %q", v.Heading)
	}
}

func TestSearchAppliesAfterWindow(t *testing.T) {
	opts := DefaultOptions()
	opts.SearchDebounce = 10 * time.Millisecond
	c, _ := newTestController(t, 45, opts)
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	c.SetSearch("attention")

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if c.Snapshot().Filters.Search == "attention" {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if got := c.Snapshot().Total; got != 9 {
		t.Fatalf("expected 9 posts titled with attention, got %d", got)
	}
}

func TestLoadMoreIsNotResetByFilters(t *testing.T) {
	c, _ := newTestController(t, 100, immediate())
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	c.LoadMore()
	c.LoadMore()
	if v := c.Snapshot(); v.Shown != 60 || v.Visible != 60 {
		t.Fatalf("expected 60 visible, got shown=%d visible=%d", v.Shown, v.Visible)
	}

	c.SetBrand("BMW")
	if v := c.Snapshot(); v.Shown != 33 || v.Total != 33 || v.HasMore {
		t.Fatalf("BMW: expected all 33 shown, got shown=%d total=%d more=%v", v.Shown, v.Total, v.HasMore)
	}

	c.SetBrand("All")
	v := c.Snapshot()
	if v.Shown != 60 || v.Total != 100 || !v.HasMore {
		t.Fatalf("widened: expected 60 of 100, got %d of %d", v.Shown, v.Total)
	}
}

func TestRetryAfterError(t *testing.T) {
	posts := &mockPostRepository{}
	c := NewController(posts, &mockUserRepository{}, &mockCarRepository{cars: testCars}, logger.New(io.Discard), immediate())
	defer c.Close()

	if err := c.Load(context.Background()); err == nil {
		t.Fatal("expected error without posts")
	}

	posts.posts = makePosts(3)
	if err := c.Retry(context.Background()); err != nil {
		t.Fatalf("unexpected retry error: %v", err)
	}
	if v := c.Snapshot(); v.Status != StatusReady || v.Error != "" || v.Total != 3 {
		t.Fatalf("unexpected state after retry: %s %q total=%d", v.Status, v.Error, v.Total)
	}
}

func TestFailedRetryDropsPreviousPosts(t *testing.T) {
	posts := &mockPostRepository{posts: makePosts(3)}
	c := NewController(posts, &mockUserRepository{}, &mockCarRepository{cars: testCars}, logger.New(io.Discard), immediate())
	defer c.Close()

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if v := c.Snapshot(); v.Total != 3 {
		t.Fatalf("expected 3 posts after the first load, got %d", v.Total)
	}

	posts.posts = nil
	if err := c.Retry(context.Background()); !errors.Is(err, ErrNoPosts) {
		t.Fatalf("expected ErrNoPosts, got %v", err)
	}
	v := c.Snapshot()
	if v.Status != StatusError || v.Error != "No blog posts available" {
		t.Fatalf("unexpected state %s %q", v.Status, v.Error)
	}
	if len(v.Posts) != 0 || v.Total != 0 || v.HasMore || len(v.Brands) != 0 || len(v.BrandCounts) != 0 {
		t.Fatalf("expected no posts from the previous load, got %+v", v)
	}
}

func TestBrandOptionsAreCapped(t *testing.T) {
	var cars []models.Car
	for i, b := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"} {
		cars = append(cars, models.Car{ID: i + 1, Brand: b, Model: "M"})
	}
	c := NewController(&mockPostRepository{posts: makePosts(3)}, &mockUserRepository{}, &mockCarRepository{cars: cars}, logger.New(io.Discard), immediate())
	defer c.Close()
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	brands := c.Snapshot().Brands
	if len(brands) != 11 || brands[0] != "All" || brands[10] != "J" {
		t.Fatalf("expected All + 10 brands, got %v", brands)
	}
}

func TestApplyIsOrderIndependent(t *testing.T) {
	c, _ := newTestController(t, 45, immediate())
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	views := c.views

	f := Filters{Search: "x5", Category: "Luxury", Brand: "BMW", AvailableOnly: true}
	combined := Apply(views, f)

	step := Apply(views, Filters{AvailableOnly: true})
	step = Apply(step, Filters{Brand: "BMW"})
	step = Apply(step, Filters{Category: "Luxury"})
	step = Apply(step, Filters{Search: "x5"})

	if len(combined) != 15 || len(step) != len(combined) {
		t.Fatalf("expected 15 posts either way, got %d and %d", len(combined), len(step))
	}
}
