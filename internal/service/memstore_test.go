package service_test

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/nikolayk812/foodgram/internal/domain"
	"github.com/nikolayk812/foodgram/internal/port"
)

// memState is the in-memory database behind memStore.
type memState struct {
	nextCartID int64
	carts      map[int64]domain.Cart
	recipes    map[int64]domain.Recipe
	deleted    map[int64]bool
	favorites  map[string][]int64
	follows    map[string][]string
}

func (s memState) clone() memState {
	c := memState{
		nextCartID: s.nextCartID,
		carts:      make(map[int64]domain.Cart, len(s.carts)),
		recipes:    maps.Clone(s.recipes),
		deleted:    maps.Clone(s.deleted),
		favorites:  make(map[string][]int64, len(s.favorites)),
		follows:    make(map[string][]string, len(s.follows)),
	}
	for id, cart := range s.carts {
		cart.RecipeIDs = slices.Clone(cart.RecipeIDs)
		c.carts[id] = cart
	}
	for owner, ids := range s.favorites {
		c.favorites[owner] = slices.Clone(ids)
	}
	for follower, authors := range s.follows {
		c.follows[follower] = slices.Clone(authors)
	}
	return c
}

// memStore implements port.Store. Transactions are serialized and roll back
// by restoring a snapshot.
type memStore struct {
	txMu *sync.Mutex
	mu   *sync.Mutex
	st   *memState
	inTx bool
}

func newMemStore(recipes ...domain.Recipe) *memStore {
	st := &memState{
		carts:     make(map[int64]domain.Cart),
		recipes:   make(map[int64]domain.Recipe),
		deleted:   make(map[int64]bool),
		favorites: make(map[string][]int64),
		follows:   make(map[string][]string),
	}
	for _, r := range recipes {
		st.recipes[r.ID] = r
	}
	return &memStore{txMu: &sync.Mutex{}, mu: &sync.Mutex{}, st: st}
}

func (s *memStore) Carts() port.CartRepository                 { return memCarts{s} }
func (s *memStore) Recipes() port.RecipeRepository             { return memRecipes{s} }
func (s *memStore) Favorites() port.FavoriteRepository         { return memFavorites{s} }
func (s *memStore) Subscriptions() port.SubscriptionRepository { return memSubscriptions{s} }

func (s *memStore) InTx(ctx context.Context, fn func(port.Store) error) error {
	if s.inTx {
		return fn(s)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()

	tx := &memStore{txMu: s.txMu, mu: s.mu, st: s.st, inTx: true}
	err := fn(tx)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		s.mu.Lock()
		*s.st = snapshot
		s.mu.Unlock()
		return err
	}

	return nil
}

func (s *memStore) openCarts(ownerID string) []domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []domain.Cart
	for _, c := range s.st.carts {
		if c.OwnerID == ownerID && !c.Downloaded {
			result = append(result, c)
		}
	}
	return result
}

type memCarts struct{ s *memStore }

func (r memCarts) GetOrCreateOpenCart(_ context.Context, ownerID string) (domain.Cart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.st.carts {
		if c.OwnerID == ownerID && !c.Downloaded {
			return c, nil
		}
	}

	r.s.st.nextCartID++
	c := domain.Cart{ID: r.s.st.nextCartID, OwnerID: ownerID}
	r.s.st.carts[c.ID] = c
	return c, nil
}

func (r memCarts) GetOpenCart(_ context.Context, ownerID string, _ bool) (domain.Cart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.st.carts {
		if c.OwnerID == ownerID && !c.Downloaded {
			return c, nil
		}
	}
	return domain.Cart{}, domain.ErrCartNotFound
}

func (r memCarts) AddRecipe(_ context.Context, cartID, recipeID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, err := r.openCart(cartID)
	if err != nil {
		return err
	}
	if _, ok := r.s.st.recipes[recipeID]; !ok || r.s.st.deleted[recipeID] {
		return domain.ErrRecipeNotFound
	}
	if slices.Contains(c.RecipeIDs, recipeID) {
		return domain.ErrAlreadyInCart
	}

	c.RecipeIDs = append(slices.Clone(c.RecipeIDs), recipeID)
	r.s.st.carts[cartID] = c
	return nil
}

func (r memCarts) RemoveRecipe(_ context.Context, cartID, recipeID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, err := r.openCart(cartID)
	if err != nil {
		return err
	}

	i := slices.Index(c.RecipeIDs, recipeID)
	if i < 0 {
		return domain.ErrNotInCart
	}

	c.RecipeIDs = slices.Delete(slices.Clone(c.RecipeIDs), i, i+1)
	r.s.st.carts[cartID] = c
	return nil
}

func (r memCarts) CloseCart(_ context.Context, cartID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, err := r.openCart(cartID)
	if err != nil {
		return err
	}

	c.Downloaded = true
	r.s.st.carts[cartID] = c
	return nil
}

func (r memCarts) ListIngredientLines(_ context.Context, cartID int64) ([]domain.IngredientLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var lines []domain.IngredientLine
	for _, recipeID := range r.s.st.carts[cartID].RecipeIDs {
		for _, ri := range r.s.st.recipes[recipeID].Ingredients {
			lines = append(lines, domain.IngredientLine{
				RecipeID: recipeID,
				Key:      ri.Ingredient.Key(),
				Amount:   ri.Amount,
			})
		}
	}
	return lines, nil
}

func (r memCarts) ListCarts(_ context.Context, ownerID string) ([]domain.Cart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []domain.Cart
	for _, c := range r.s.st.carts {
		if c.OwnerID == ownerID {
			result = append(result, c)
		}
	}
	slices.SortFunc(result, func(a, b domain.Cart) int { return int(b.ID - a.ID) })
	return result, nil
}

func (r memCarts) openCart(cartID int64) (domain.Cart, error) {
	c, ok := r.s.st.carts[cartID]
	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	if c.Downloaded {
		return domain.Cart{}, domain.ErrCartClosed
	}
	return c, nil
}

type memRecipes struct{ s *memStore }

func (r memRecipes) CreateRecipe(_ context.Context, nr domain.NewRecipe) (domain.Recipe, error) {
	if err := nr.Validate(); err != nil {
		return domain.Recipe{}, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	recipe := domain.Recipe{
		ID:          int64(len(r.s.st.recipes) + 1),
		AuthorID:    nr.AuthorID,
		Name:        nr.Name,
		Text:        nr.Text,
		CookingTime: nr.CookingTime,
		Image:       nr.Image,
	}
	r.s.st.recipes[recipe.ID] = recipe
	return recipe, nil
}

func (r memRecipes) GetRecipe(_ context.Context, recipeID int64) (domain.Recipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	recipe, ok := r.s.st.recipes[recipeID]
	if !ok || r.s.st.deleted[recipeID] {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

func (r memRecipes) UpdateRecipe(_ context.Context, recipeID int64, nr domain.NewRecipe) (domain.Recipe, error) {
	if err := nr.Validate(); err != nil {
		return domain.Recipe{}, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	recipe, ok := r.s.st.recipes[recipeID]
	if !ok || r.s.st.deleted[recipeID] {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}

	recipe.Name = nr.Name
	recipe.Text = nr.Text
	recipe.CookingTime = nr.CookingTime
	recipe.Image = nr.Image
	r.s.st.recipes[recipeID] = recipe
	return recipe, nil
}

func (r memRecipes) DeleteRecipe(_ context.Context, recipeID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.st.recipes[recipeID]; !ok || r.s.st.deleted[recipeID] {
		return domain.ErrRecipeNotFound
	}
	r.s.st.deleted[recipeID] = true

	for id, c := range r.s.st.carts {
		if c.Downloaded {
			continue
		}
		c.RecipeIDs = slices.DeleteFunc(slices.Clone(c.RecipeIDs), func(rid int64) bool { return rid == recipeID })
		r.s.st.carts[id] = c
	}
	for owner, ids := range r.s.st.favorites {
		r.s.st.favorites[owner] = slices.DeleteFunc(slices.Clone(ids), func(rid int64) bool { return rid == recipeID })
	}
	return nil
}

func (r memRecipes) ListRecipes(_ context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []domain.Recipe
	for _, id := range slices.Sorted(maps.Keys(r.s.st.recipes)) {
		recipe := r.s.st.recipes[id]
		if r.s.st.deleted[id] || (filter.AuthorID != "" && recipe.AuthorID != filter.AuthorID) {
			continue
		}
		result = append(result, recipe)
	}
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r memRecipes) SearchIngredients(context.Context, string) ([]domain.Ingredient, error) {
	return nil, nil
}

func (r memRecipes) UpsertIngredient(_ context.Context, name, unit string) (domain.Ingredient, error) {
	return domain.Ingredient{Name: name, MeasurementUnit: unit}, nil
}

func (r memRecipes) CreateTag(_ context.Context, tag domain.Tag) (domain.Tag, error) {
	return tag, nil
}

func (r memRecipes) ListTags(context.Context) ([]domain.Tag, error) {
	return nil, nil
}

type memFavorites struct{ s *memStore }

func (r memFavorites) AddFavorite(_ context.Context, ownerID string, recipeID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if slices.Contains(r.s.st.favorites[ownerID], recipeID) {
		return domain.ErrAlreadyFavorited
	}
	r.s.st.favorites[ownerID] = append(r.s.st.favorites[ownerID], recipeID)
	return nil
}

func (r memFavorites) RemoveFavorite(_ context.Context, ownerID string, recipeID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := r.s.st.favorites[ownerID]
	i := slices.Index(ids, recipeID)
	if i < 0 {
		return domain.ErrNotFavorited
	}
	r.s.st.favorites[ownerID] = slices.Delete(ids, i, i+1)
	return nil
}

type memSubscriptions struct{ s *memStore }

func (r memSubscriptions) Subscribe(_ context.Context, followerID, authorID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if followerID == authorID {
		return domain.ErrSelfSubscription
	}
	if slices.Contains(r.s.st.follows[followerID], authorID) {
		return domain.ErrAlreadySubscribed
	}
	r.s.st.follows[followerID] = append(r.s.st.follows[followerID], authorID)
	return nil
}

func (r memSubscriptions) Unsubscribe(_ context.Context, followerID, authorID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	authors := r.s.st.follows[followerID]
	i := slices.Index(authors, authorID)
	if i < 0 {
		return domain.ErrNotSubscribed
	}
	r.s.st.follows[followerID] = slices.Delete(slices.Clone(authors), i, i+1)
	return nil
}

func (r memSubscriptions) ListSubscriptions(_ context.Context, followerID, authorID string) ([]domain.Subscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []domain.Subscription
	for _, author := range slices.Backward(r.s.st.follows[followerID]) {
		if authorID != "" && author != authorID {
			continue
		}

		count := 0
		for id, recipe := range r.s.st.recipes {
			if recipe.AuthorID == author && !r.s.st.deleted[id] {
				count++
			}
		}
		result = append(result, domain.Subscription{AuthorID: author, RecipesCount: count})
	}
	return result, nil
}
