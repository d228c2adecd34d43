package vault

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/illarion/pocketvault/internal/crypto"
	"github.com/illarion/pocketvault/internal/model"
	"github.com/illarion/pocketvault/internal/settings"
	"github.com/illarion/pocketvault/internal/storage"
	"github.com/illarion/pocketvault/internal/vaultfile"
)

const vaultExt = ".vault"

var (
	ErrLocked        = errors.New("no vault is open")
	ErrInvalidName   = errors.New("invalid vault name")
	ErrEntryNotFound = errors.New("entry not found")
	ErrEntryExists   = errors.New("entry already exists")

	// ErrVaultGone means the container on disk disappeared or lost its
	// structure since it was opened. Save refuses to proceed so a fresh
	// container is never written over an unknown state.
	ErrVaultGone = errors.New("vault file is missing or damaged")
)

// Service runs the vault lifecycle over its collaborators. All operator
// interaction goes through the prompter; the session is owned by the caller
// and shared with whoever else needs the credentials.
type Service struct {
	store    storage.Store
	settings *settings.Store
	engine   *crypto.Engine
	layout   vaultfile.Layout
	prompter Prompter
	session  *Session

	// defaultDir is where new vaults are created and where discovery
	// starts when no directory was remembered.
	defaultDir string

	entries    []model.Entry
	categories []model.Category
}

// NewService wires a lifecycle service. A nil engine uses system entropy.
func NewService(store storage.Store, st *settings.Store, engine *crypto.Engine, prompter Prompter, session *Session, defaultDir string) *Service {
	if engine == nil {
		engine = crypto.NewEngine(nil)
	}
	return &Service{
		store:      store,
		settings:   st,
		engine:     engine,
		layout:     vaultfile.DefaultLayout(),
		prompter:   prompter,
		session:    session,
		defaultDir: defaultDir,
	}
}

// Session returns the session the service operates on.
func (s *Service) Session() *Session {
	return s.session
}

// Create makes a new vault under the default directory, prompts for a
// passphrase twice, seals an empty credential structure and opens the
// result. An existing file is only replaced after explicit confirmation.
func (s *Service) Create(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	target := path.Join(s.defaultDir, name+vaultExt)
	if s.store.Exists(target) {
		if !s.prompter.Confirm(fmt.Sprintf("Vault %s already exists. Overwrite?", name)) {
			return ErrAborted
		}
	}

	passphrase, err := PromptSecretConfirm(s.prompter)
	if err != nil {
		return err
	}

	plaintext, err := model.EmptyStructure()
	if err != nil {
		passphrase.Wipe()
		return err
	}

	raw, err := s.seal(plaintext, passphrase)
	crypto.ClearBytes(plaintext)
	if err != nil {
		passphrase.Wipe()
		return err
	}

	if err := s.store.EnsureDir(s.defaultDir); err != nil {
		passphrase.Wipe()
		crypto.ClearBytes(raw)
		return err
	}
	if err := s.store.WriteBytes(target, raw); err != nil {
		passphrase.Wipe()
		crypto.ClearBytes(raw)
		return err
	}
	crypto.ClearBytes(raw)
	s.store.Invalidate(s.store.Parent(target))

	s.session.Set(target, passphrase)
	s.entries = nil
	s.categories = nil
	return nil
}

// Open opens the vault at p, prompting for the passphrase. An empty path
// starts interactive discovery instead.
func (s *Service) Open(p string) error {
	if p == "" {
		return s.Discover()
	}
	return s.openPath(p)
}

// Discover browses the medium for a vault, starting at the remembered
// last-used directory. Picking a file that fails the structural pre-check
// reports it and resumes browsing; a wrong passphrase re-prompts without
// re-browsing.
func (s *Service) Discover() error {
	dir := s.startDir()

	for {
		names, err := s.store.List(dir)
		if err != nil {
			return err
		}

		options := make([]string, 0, len(names)+1)
		if dir != "/" {
			options = append(options, "..")
		}
		options = append(options, names...)

		choice, err := s.prompter.Select("Select a vault ("+dir+")", options)
		if err != nil {
			return err
		}

		picked := options[choice]
		if picked == ".." {
			dir = s.store.Parent(dir)
			continue
		}

		full := path.Join(dir, picked)
		if s.store.IsDirectory(full) {
			dir = full
			continue
		}

		err = s.openPath(full)
		if errors.Is(err, vaultfile.ErrBadMagic) || errors.Is(err, vaultfile.ErrTruncated) {
			s.prompter.Notify("Invalid file: not a vault")
			continue
		}
		return err
	}
}

// openPath opens the vault at p. The container is read and structurally
// checked once, before any passphrase is requested; a failed
// authentication re-prompts over the same bytes, everything else is
// returned to the caller. The raw container bytes are zeroed on every
// exit path.
func (s *Service) openPath(p string) error {
	raw, err := s.store.ReadBytes(p)
	if err != nil {
		return err
	}
	container, err := vaultfile.Decode(s.layout, raw)
	if err != nil {
		crypto.ClearBytes(raw)
		return err
	}
	defer container.Wipe()

	env := envelopeOf(container)
	for {
		passphrase, err := s.prompter.PromptSecret("Enter passphrase: ")
		if err != nil {
			return err
		}

		plaintext, err := s.engine.Open(env, passphrase.Bytes())
		if errors.Is(err, crypto.ErrAuthFailed) {
			passphrase.Wipe()
			s.prompter.Notify("Invalid password")
			continue
		}
		if err != nil {
			passphrase.Wipe()
			return err
		}
		return s.finishOpen(p, passphrase, plaintext)
	}
}

// OpenWith opens the vault at p with a supplied passphrase, without any
// prompting. Used when the passphrase comes from the OS keyring. The
// service takes ownership of the secret; on failure it is wiped.
func (s *Service) OpenWith(p string, passphrase *crypto.Secret) error {
	plaintext, err := s.decryptFile(p, passphrase)
	if err != nil {
		passphrase.Wipe()
		return err
	}
	return s.finishOpen(p, passphrase, plaintext)
}

// finishOpen installs the decoded payload and the session. The plaintext
// is consumed and zeroed; the passphrase is wiped if the payload does not
// parse.
func (s *Service) finishOpen(p string, passphrase *crypto.Secret, plaintext []byte) error {
	entries, err := model.DeserializeEntries(plaintext)
	if err == nil {
		s.categories, err = model.DeserializeCategories(plaintext)
	}
	crypto.ClearBytes(plaintext)
	if err != nil {
		passphrase.Wipe()
		return err
	}

	s.entries = entries
	s.session.Set(p, passphrase)
	s.rememberDir(s.store.Parent(p))
	return nil
}

// decryptFile reads and decrypts the container at p with one passphrase
// attempt. The raw container bytes are zeroed before returning; the
// plaintext is owned by the caller.
func (s *Service) decryptFile(p string, passphrase *crypto.Secret) ([]byte, error) {
	raw, err := s.store.ReadBytes(p)
	if err != nil {
		return nil, err
	}

	container, err := vaultfile.Decode(s.layout, raw)
	if err != nil {
		crypto.ClearBytes(raw)
		return nil, err
	}
	defer container.Wipe()

	return s.engine.Open(envelopeOf(container), passphrase.Bytes())
}

// envelopeOf views a decoded container as a crypto envelope. The fields
// alias the container's buffer; they live only as long as it does.
func envelopeOf(c *vaultfile.Container) *crypto.Envelope {
	return &crypto.Envelope{
		Salt:       c.Salt(),
		Nonce:      c.Nonce(),
		Tag:        c.Tag(),
		Ciphertext: c.Ciphertext(),
	}
}

// Save re-seals the in-memory credentials over the open vault with a fresh
// salt and nonce. The existing container must still be present and
// structurally valid; otherwise the save aborts and the session is left
// untouched.
func (s *Service) Save() error {
	if !s.session.Unlocked() {
		return ErrLocked
	}
	p := s.session.Path()

	existing, err := s.store.ReadBytes(p)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVaultGone, err)
	}
	ok := vaultfile.HasValidMagic(s.layout, existing)
	crypto.ClearBytes(existing)
	if !ok {
		return ErrVaultGone
	}

	plaintext, err := model.Serialize(s.entries, s.categories)
	if err != nil {
		return err
	}

	raw, err := s.seal(plaintext, s.session.Passphrase())
	crypto.ClearBytes(plaintext)
	if err != nil {
		return err
	}

	err = s.store.WriteBytes(p, raw)
	crypto.ClearBytes(raw)
	if err != nil {
		return err
	}
	s.store.Invalidate(s.store.Parent(p))
	return nil
}

// Lock clears the session. The in-memory credentials survive until the
// next open replaces them.
func (s *Service) Lock() {
	s.session.Clear()
}

// seal encrypts plaintext and emits a complete container.
func (s *Service) seal(plaintext []byte, passphrase *crypto.Secret) ([]byte, error) {
	env, err := s.engine.Seal(plaintext, passphrase.Bytes())
	if err != nil {
		return nil, err
	}
	defer env.Wipe()

	builder := vaultfile.NewBuilder(s.layout).SetEnvelope(env)
	defer builder.Wipe()
	return builder.Build()
}

// startDir picks the discovery starting point: remembered directory, then
// the default vault directory, then the medium root.
func (s *Service) startDir() string {
	if s.settings != nil {
		if dir, err := s.settings.GetString(settings.KeyLastUsedVaultDir); err == nil && dir != "" && s.store.IsDirectory(dir) {
			return dir
		}
	}
	if s.store.IsDirectory(s.defaultDir) {
		return s.defaultDir
	}
	return "/"
}

func (s *Service) rememberDir(dir string) {
	if s.settings == nil {
		return
	}
	// Best effort; a failed write here must not fail the open.
	_ = s.settings.SaveString(settings.KeyLastUsedVaultDir, dir)
}

// Entries returns the in-memory credentials.
func (s *Service) Entries() []model.Entry {
	return s.entries
}

// Categories returns the in-memory categories.
func (s *Service) Categories() []model.Category {
	return s.categories
}

// FindEntry looks an entry up by title.
func (s *Service) FindEntry(title string) (*model.Entry, error) {
	for i := range s.entries {
		if s.entries[i].Title == title {
			return &s.entries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, title)
}

// AddEntry adds a credential. Titles are unique within a vault.
func (s *Service) AddEntry(e model.Entry) error {
	if !s.session.Unlocked() {
		return ErrLocked
	}
	if e.Title == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidName)
	}
	for i := range s.entries {
		if s.entries[i].Title == e.Title {
			return fmt.Errorf("%w: %s", ErrEntryExists, e.Title)
		}
	}
	s.entries = append(s.entries, e)
	sort.Slice(s.entries, func(i, j int) bool { return s.entries[i].Title < s.entries[j].Title })
	return nil
}

// RemoveEntry deletes a credential by title.
func (s *Service) RemoveEntry(title string) error {
	if !s.session.Unlocked() {
		return ErrLocked
	}
	for i := range s.entries {
		if s.entries[i].Title == title {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrEntryNotFound, title)
}
