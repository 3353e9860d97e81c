package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"

	"github.com/AntonStoeckl/solid-specifications-go/genealogy"
	"github.com/AntonStoeckl/solid-specifications-go/journal"
	"github.com/AntonStoeckl/solid-specifications-go/journal/persistence"
	"github.com/AntonStoeckl/solid-specifications-go/product"
	"github.com/AntonStoeckl/solid-specifications-go/report"
	"github.com/AntonStoeckl/solid-specifications-go/shape"
	"github.com/AntonStoeckl/solid-specifications-go/specification"
	"github.com/AntonStoeckl/solid-specifications-go/specification/celspec"
)

// runner prints one example's narrative to out.
type runner struct {
	cfg Config
	obs observability
	out io.Writer
}

func (r runner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func (r runner) run(ctx context.Context, example string) error {
	switch example {
	case exampleDependencyInversion:
		return r.dependencyInversion()
	case exampleLiskovSubstitution:
		return r.liskovSubstitution()
	case exampleOpenClosed:
		return r.openClosed(ctx)
	case exampleSingleResponsibility:
		return r.singleResponsibility(ctx)
	default:
		return fmt.Errorf("%w: unknown example %q", errInvalidConf, example)
	}
}

/***** Dependency Inversion *****/

func (r runner) dependencyInversion() error {
	john := genealogy.NewPerson("John")
	chris := genealogy.NewPerson("Chris")
	matt := genealogy.NewPerson("Matt")

	relationships := genealogy.NewRelationships()
	relationships.AddParentAndChild(john, chris)
	relationships.AddParentAndChild(john, matt)

	r.printf("# Dependency Inversion\n")

	for _, line := range genealogy.NewResearch(relationships).ChildrenReport(john.Name) {
		r.printf("%s\n", line)
	}

	r.printf("\n")

	return nil
}

/***** Liskov Substitution *****/

func (r runner) liskovSubstitution() error {
	r.printf("# Liskov Substitution\n")

	rc, err := shape.NewRectangle(200, 300)
	if err != nil {
		return err
	}
	r.printf("%s\n", rc)

	sq, err := shape.NewSquare(5)
	if err != nil {
		return err
	}
	r.printf("%s\n", sq)

	// widening a square yields a rectangle, the square itself stays untouched
	widened, err := sq.AsRectangle().WithWidth(10)
	if err != nil {
		return err
	}
	r.printf("%s (square is still %s)\n", widened, sq)

	bigger, err := sq.WithSide(10)
	if err != nil {
		return err
	}
	r.printf("%s\n", bigger)

	rc2, err := shape.NewRectangle(5, 10)
	if err != nil {
		return err
	}

	for _, s := range []shape.Shape{rc2, sq} {
		check, checkErr := shape.CheckAreaAfterHeightChange(s, 10)
		if checkErr != nil {
			return checkErr
		}
		r.printf("%s\n", check)
	}

	r.printf("\n")

	return nil
}

/***** Open-Closed *****/

func (r runner) openClosed(ctx context.Context) error {
	products := product.Products{
		product.Build("Apple", product.Green, product.Small),
		product.Build("Tree", product.Green, product.Large),
		product.Build("House", product.Blue, product.Large),
	}

	isColor := func(p product.Product) string { return fmt.Sprintf("%s is %s.", p.Name, p.Color) }
	isSize := func(p product.Product) string { return fmt.Sprintf("%s is %s.", p.Name, p.Size) }
	isLargeAndGreen := func(p product.Product) string { return p.Name + " is large and green." }

	r.printf("# Open-Closed\n")

	pf := product.ProductFilter{}
	if err := report.NewConsole(r.out, isColor).Report("Green products (old approach):", pf.FilterByColor(products, product.Green)); err != nil {
		return err
	}

	if err := report.NewConsole(r.out, isSize).Report("Large products (old approach):", pf.FilterBySize(products, product.Large)); err != nil {
		return err
	}

	greenSpec := product.ColorSpecification{Color: product.Green}
	if err := report.NewConsole(r.out, isColor).Report("Green products (new approach):", specification.Filter(products, greenSpec)); err != nil {
		return err
	}

	largeAndGreen := specification.And[product.Product](greenSpec, product.SizeSpecification{Size: product.Large})
	if err := report.NewConsole(r.out, isLargeAndGreen).Report("Large and green products:", specification.Filter(products, largeAndGreen)); err != nil {
		return err
	}

	celLargeAndGreen, err := celspec.New(`item.color == "green" && item.size == "large"`, func(p product.Product) map[string]any {
		return map[string]any{product.AttrColor: string(p.Color), product.AttrSize: string(p.Size)}
	})
	if err != nil {
		return err
	}

	if err = report.NewConsole(r.out, isLargeAndGreen).Report("Large and green products (expression):", specification.Filter(products, celLargeAndGreen)); err != nil {
		return err
	}

	stored, err := r.queryCatalog(ctx, products)
	if err != nil {
		return err
	}

	if err = report.NewConsole(r.out, isLargeAndGreen).Report("Large and green products (catalog):", stored); err != nil {
		return err
	}

	r.printf("\n")

	return nil
}

// queryCatalog stores products in the configured catalog and queries the large and green ones back.
func (r runner) queryCatalog(ctx context.Context, products product.Products) (product.Products, error) {
	store, cleanup, err := openCatalog(ctx, r.cfg, r.obs)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if len(products) > 0 {
		if err = store.Save(ctx, products[0], products[1:]...); err != nil {
			return nil, err
		}
	}

	criteria := specification.BuildCriteria().
		Matching().
		AllAttributesOf(
			specification.A(product.AttrColor, string(product.Green)),
			specification.A(product.AttrSize, string(product.Large)),
		).
		Finalize()

	return store.Query(ctx, criteria)
}

/***** Single Responsibility *****/

func (r runner) singleResponsibility(ctx context.Context) error {
	r.printf("# Single Responsibility\n")

	j := journal.New()
	j.AddEntry("I cried today.")
	j.AddEntry("I took coffee.")
	r.printf("%s\n", j)

	j.RemoveEntry(2)
	r.printf("%s\n", j)

	fileManager, err := r.persistenceManager(persistence.NewFileStorage(), persistence.FormatText)
	if err != nil {
		return err
	}

	if err = fileManager.Save(ctx, j, r.cfg.JournalPath); err != nil {
		return err
	}
	r.printf("Journal saved to %s\n", r.cfg.JournalPath)

	if r.cfg.RedisAddr != "" {
		if err = r.saveToRedis(ctx, j); err != nil {
			return err
		}
	}

	r.printf("\n")

	return nil
}

func (r runner) saveToRedis(ctx context.Context, j *journal.Journal) (err error) {
	client := redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	defer func() {
		err = errors.Join(err, client.Close())
	}()

	storage := persistence.NewRedisStorage(client, persistence.WithKeyPrefix("journal:"))

	redisManager, err := r.persistenceManager(storage, persistence.FormatJSON)
	if err != nil {
		return err
	}

	if err = redisManager.Save(ctx, j, r.cfg.JournalPath); err != nil {
		return err
	}

	r.printf("Journal saved to redis key %s\n", storage.Key(r.cfg.JournalPath))

	return nil
}

func (r runner) persistenceManager(storage persistence.Storage, format persistence.Format) (persistence.PersistenceManager, error) {
	options := []persistence.Option{
		persistence.WithFormat(format),
		persistence.WithLogger(r.obs.logger),
	}

	if r.obs.contextualLogger != nil {
		options = append(options, persistence.WithContextualLogger(r.obs.contextualLogger))
	}

	if r.obs.metrics != nil {
		options = append(options, persistence.WithMetrics(r.obs.metrics))
	}

	return persistence.NewPersistenceManager(storage, options...)
}
