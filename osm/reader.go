package osm

import (
	"context"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"io"
	"os"
	"strings"
	"time"
)

type OsmDataHandler interface {
	Name() string
	Init() error
	HandleNode(node *osm.Node) error
	HandleWay(way *osm.Way) error
	HandleRelation(relation *osm.Relation) error
	Done() error
}

// ReadFile reads the given .osm or .pbf file and passes all objects to the handlers.
func ReadFile(filename string, handlers ...OsmDataHandler) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "Unable to open OSM input file %s", filename)
	}
	defer file.Close()

	var scanner osm.Scanner
	if strings.HasSuffix(filename, ".osm") {
		scanner = osmxml.New(context.Background(), file)
	} else if strings.HasSuffix(filename, ".pbf") {
		scanner = osmpbf.New(context.Background(), file, 1)
	} else {
		return errors.Errorf("Input file %s must be an .osm or .pbf file", filename)
	}

	sigolo.Infof("Start processing OSM data file %s", filename)
	return Read(scanner, handlers...)
}

// ReadXml reads OSM XML data from the given reader and passes all objects to the handlers.
func ReadXml(reader io.Reader, handlers ...OsmDataHandler) error {
	return Read(osmxml.New(context.Background(), reader), handlers...)
}

// Read passes all objects of the scanner to the handlers. The scanner is closed afterwards, also when a handler or the
// scanner fails.
func Read(scanner osm.Scanner, handlers ...OsmDataHandler) error {
	startTime := time.Now()

	err := readObjects(scanner, handlers...)
	closeErr := scanner.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, "Unable to close OSM scanner")
	}

	sigolo.Infof("Done processing OSM data in %s", time.Since(startTime))

	return nil
}

func readObjects(scanner osm.Scanner, handlers ...OsmDataHandler) error {
	for _, handler := range handlers {
		err := handler.Init()
		if err != nil {
			return errors.Wrapf(err, "Initializing OSM data handler '%s' failed", handler.Name())
		}
	}

	var err error
	for scanner.Scan() {
		switch osmObj := scanner.Object().(type) {
		case *osm.Node:
			for _, handler := range handlers {
				err = handler.HandleNode(osmObj)
				if err != nil {
					return errors.Wrapf(err, "Handling node %d using handler '%s' failed", osmObj.ID, handler.Name())
				}
			}
		case *osm.Way:
			for _, handler := range handlers {
				err = handler.HandleWay(osmObj)
				if err != nil {
					return errors.Wrapf(err, "Handling way %d using handler '%s' failed", osmObj.ID, handler.Name())
				}
			}
		case *osm.Relation:
			for _, handler := range handlers {
				err = handler.HandleRelation(osmObj)
				if err != nil {
					return errors.Wrapf(err, "Handling relation %d using handler '%s' failed", osmObj.ID, handler.Name())
				}
			}
		}
	}

	if err = scanner.Err(); err != nil {
		return errors.Wrap(err, "Unable to read OSM data")
	}

	for _, handler := range handlers {
		err = handler.Done()
		if err != nil {
			return errors.Wrapf(err, "Calling done function on handler '%s' failed", handler.Name())
		}
	}

	return nil
}
