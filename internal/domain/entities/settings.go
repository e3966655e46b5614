package entities

// Category is one main category with its ordered sub-category list.

type Category struct {
	Name string   `json:"name"`
	Subs []string `json:"subs"`
}

// CategoryList is the shop's two-level classification registry, ordered so
// "first category" is well defined (intake forms default to it).
type CategoryList []Category

// DefaultCategories seeds the registry on first access.
func DefaultCategories() CategoryList {
	return CategoryList{
		{Name: "바지", Subs: []string{"단수선", "기장수선", "통줄임", "허리줄임"}},
		{Name: "자켓", Subs: []string{"소매줄임", "어깨줄임", "기장줄임"}},
		{Name: "셔츠", Subs: []string{"소매줄임", "사이즈수선"}},
		{Name: "코트", Subs: []string{"기장줄임", "안감수선"}},
		{Name: "원피스", Subs: []string{"기장수선", "사이즈수선"}},
		{Name: "가방", Subs: []string{"지퍼수리", "가죽수선"}},
		{Name: "기타", Subs: []string{"단추", "지퍼", "기타수선"}},
	}
}

// Names returns the main category names in registry order.
func (l CategoryList) Names() []string {
	names := make([]string, 0, len(l))
	for _, c := range l {
		names = append(names, c.Name)
	}
	return names
}

func (l CategoryList) index(name string) int {
	for i, c := range l {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Has reports whether a main category exists.
func (l CategoryList) Has(name string) bool {
	return l.index(name) >= 0
}

// SubsOf returns the sub-category list of a main category, nil if absent.
func (l CategoryList) SubsOf(name string) []string {
	if i := l.index(name); i >= 0 {
		return l[i].Subs
	}
	return nil
}

// FirstName is the fallback main category for entries whose category no
// longer exists in the registry. Empty registry yields "".
func (l CategoryList) FirstName() string {
	if len(l) == 0 {
		return ""
	}
	return l[0].Name
}

// PriceTable maps (main, sub) to a manually configured reference price.
// Entries are always positive; Set removes rather than stores non-positive
// values and prunes main categories left without entries.
type PriceTable map[string]map[string]int

func (p PriceTable) Get(main, sub string) int {
	return p[main][sub]
}

func (p PriceTable) Set(main, sub string, price int) {
	if price > 0 {
		if p[main] == nil {
			p[main] = map[string]int{}
		}
		p[main][sub] = price
		return
	}
	delete(p[main], sub)
	if len(p[main]) == 0 {
		delete(p, main)
	}
}
