package rstdoc

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/nieomylnieja/rstdoc/pkg/reflection"
)

// Build renders every class and writes its document to basedir.
//
// All classes are validated before anything is written,
// so that an invalid class never leaves a partially generated documentation behind.
// Documents are rendered concurrently, see [WithConcurrency].
func Build(ctx context.Context, basedir string, classes []reflection.Class, opts ...Option) error {
	options := newOptions(opts...)

	elements := make([]*ClassElement, 0, len(classes))
	paths := make(map[string]string, len(classes))
	for _, class := range classes {
		element, err := NewClassElement(class, opts...)
		if err != nil {
			return err
		}
		if other, exists := paths[element.Path()]; exists {
			return errors.Errorf("both %s and %s would be written to %s",
				other, class.FullName(), element.Path())
		}
		paths[element.Path()] = class.FullName()
		elements = append(elements, element)
	}

	if err := os.MkdirAll(basedir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s output directory", basedir)
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(options.concurrency)
	for _, element := range elements {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := element.Build(basedir); err != nil {
				return err
			}
			options.logger.WithFields(logrus.Fields{
				"class": element.class.FullName(),
				"path":  element.Path(),
			}).Debug("document written")
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	options.logger.WithFields(logrus.Fields{
		"documents": len(elements),
		"output":    basedir,
	}).Info("documentation generated")
	return nil
}
