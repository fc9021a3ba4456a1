package abstraction

type Catalog interface {
	Creator
	Updater
	Deleter
	Getter
	Lister
}
