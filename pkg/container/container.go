package container

import (
	"fmt"
	"log"

	"library-backend/internal/config"
	"library-backend/internal/infrastructure/filestore"

	"library-backend/internal/domains/author"
	authorHandler "library-backend/internal/domains/author/handler"
	authorRepo "library-backend/internal/domains/author/repository"
	authorService "library-backend/internal/domains/author/service"
	"library-backend/internal/domains/book"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	"library-backend/internal/domains/borrowing"
	borrowingHandler "library-backend/internal/domains/borrowing/handler"
	borrowingRepo "library-backend/internal/domains/borrowing/repository"
	borrowingService "library-backend/internal/domains/borrowing/service"
)

// Container holds every dependency of the application, wired once at
// startup. Initialization order matters: config, then storage, then
// repositories, services and handlers on top.
type Container struct {
	Config *config.Config

	// Storage layer: one collection per entity type, each owning its
	// JSON file. Shared by the repositories — never opened twice.
	Books      *filestore.Collection[book.Book]
	Authors    *filestore.Collection[author.Author]
	Borrowings *filestore.Collection[borrowing.Borrowing]

	// Repository layer
	BookRepo      book.Repository
	AuthorRepo    author.Repository
	BorrowingRepo borrowing.Repository

	// Service layer
	BookService      book.Service
	AuthorService    author.Service
	BorrowingService borrowing.Service

	// Handler layer
	BookHandler      *bookHandler.BookHandler
	AuthorHandler    *authorHandler.AuthorHandler
	BorrowingHandler *borrowingHandler.BorrowingHandler
}

// NewContainer builds the full dependency graph.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing container...")

	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	books, err := filestore.Open[book.Book](cfg.BooksPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open books collection: %w", err)
	}
	authors, err := filestore.Open[author.Author](cfg.AuthorsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open authors collection: %w", err)
	}
	borrowings, err := filestore.Open[borrowing.Borrowing](cfg.BorrowingsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open borrowings collection: %w", err)
	}
	c.Books = books
	c.Authors = authors
	c.Borrowings = borrowings
	log.Printf("✅ Collections opened in %s", cfg.Storage.DataDir)

	c.BookRepo = bookRepo.NewBookRepository(books)
	c.AuthorRepo = authorRepo.NewAuthorRepository(authors)
	c.BorrowingRepo = borrowingRepo.NewBorrowingRepository(books, borrowings)

	c.BookService = bookService.NewBookService(c.BookRepo)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.BorrowingService = borrowingService.NewBorrowingService(c.BorrowingRepo, cfg.Lending.LoanPeriodDays)

	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BorrowingHandler = borrowingHandler.NewBorrowingHandler(c.BorrowingService)

	log.Println("✅ Container ready")
	return c, nil
}

// Cleanup releases held resources. Collections persist on every
// transaction, so there is nothing to flush; the hook stays for parity
// with future closable dependencies.
func (c *Container) Cleanup() {
	log.Println("🧹 Container cleanup complete")
}
