package h5io

import (
	"errors"
	"fmt"

	"gonum.org/v1/hdf5"

	"github.com/gregstarr/geodata"
	"github.com/gregstarr/geodata/coords"
)

// ErrBadLayout indicates an HDF5 file that does not match the geodata
// layout (missing arrays, unexpected ranks).
var ErrBadLayout = errors.New("h5io: file does not match the geodata layout")

// Write serializes g to path, replacing any existing file.
func Write(g *geodata.GeoData, path string) error {
	f, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	if err != nil {
		return fmt.Errorf("h5io: create %s: %w", path, err)
	}
	defer f.Close()

	if err := writeString(&f.CommonFG, "coordnames", string(g.Coords)); err != nil {
		return err
	}
	if err := writeString(&f.CommonFG, "expdesc", g.Desc); err != nil {
		return err
	}

	locFlat := make([]float64, 0, len(g.DataLoc)*3)
	for _, row := range g.DataLoc {
		locFlat = append(locFlat, row...)
	}
	if err := writeFloats(&f.CommonFG, "dataloc", []uint{uint(len(g.DataLoc)), 3}, locFlat); err != nil {
		return err
	}

	if err := writeFloats(&f.CommonFG, "sensorloc", []uint{3}, g.SensorLoc[:]); err != nil {
		return err
	}

	timeFlat := make([]float64, 0, len(g.Times)*2)
	for _, iv := range g.Times {
		timeFlat = append(timeFlat, iv.Start, iv.End)
	}
	if err := writeFloats(&f.CommonFG, "times", []uint{uint(len(g.Times)), 2}, timeFlat); err != nil {
		return err
	}

	grp, err := f.CreateGroup("data")
	if err != nil {
		return fmt.Errorf("h5io: create group data: %w", err)
	}
	defer grp.Close()

	for _, name := range g.FieldNames() {
		dims, flat := flatten(g.Data[name])
		if err := writeFloats(&grp.CommonFG, name, dims, flat); err != nil {
			return err
		}
	}

	return nil
}

// Read loads a dataset previously produced by Write. The result passes the
// same validation as any adapter-built dataset.
func Read(path string) (*geodata.GeoData, error) {
	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("h5io: open %s: %w", path, err)
	}
	defer f.Close()

	coordName, err := readString(&f.CommonFG, "coordnames")
	if err != nil {
		return nil, err
	}
	sys, err := coords.ParseSystem(coordName)
	if err != nil {
		return nil, fmt.Errorf("h5io: coordnames %q: %w", coordName, ErrBadLayout)
	}

	desc, err := readString(&f.CommonFG, "expdesc")
	if err != nil {
		return nil, err
	}

	locDims, locFlat, err := readFloats(&f.CommonFG, "dataloc")
	if err != nil {
		return nil, err
	}
	if len(locDims) != 2 || locDims[1] != 3 {
		return nil, fmt.Errorf("h5io: dataloc has shape %v, want (N,3): %w", locDims, ErrBadLayout)
	}
	locations := unflatten2(locFlat, int(locDims[0]), 3)

	senDims, senFlat, err := readFloats(&f.CommonFG, "sensorloc")
	if err != nil {
		return nil, err
	}
	if len(senDims) != 1 || senDims[0] != 3 {
		return nil, fmt.Errorf("h5io: sensorloc has shape %v, want (3,): %w", senDims, ErrBadLayout)
	}
	var sensor [3]float64
	copy(sensor[:], senFlat)

	timeDims, timeFlat, err := readFloats(&f.CommonFG, "times")
	if err != nil {
		return nil, err
	}
	if len(timeDims) != 2 || timeDims[1] != 2 {
		return nil, fmt.Errorf("h5io: times has shape %v, want (N,2): %w", timeDims, ErrBadLayout)
	}
	rawTimes := unflatten2(timeFlat, int(timeDims[0]), 2)

	grp, err := f.OpenGroup("data")
	if err != nil {
		return nil, fmt.Errorf("h5io: open group data: %w", err)
	}
	defer grp.Close()

	n, err := grp.NumObjects()
	if err != nil {
		return nil, fmt.Errorf("h5io: list group data: %w", err)
	}
	fields := make(map[string]geodata.Field, n)
	for i := uint(0); i < n; i++ {
		name, err := grp.ObjectNameByIndex(i)
		if err != nil {
			return nil, fmt.Errorf("h5io: list group data: %w", err)
		}
		dims, flat, err := readFloats(&grp.CommonFG, name)
		if err != nil {
			return nil, err
		}
		field, err := unflattenField(dims, flat)
		if err != nil {
			return nil, fmt.Errorf("h5io: field %q: %w", name, err)
		}
		fields[name] = field
	}

	return geodata.New(geodata.Tuple{
		Fields:    fields,
		Coords:    sys,
		Locations: locations,
		SensorLoc: sensor,
		RawTimes:  rawTimes,
		Desc:      desc,
	}, nil)
}

// flatten returns the HDF5 dims and row-major payload of a field: rank 2
// (locations × times) for scalar fields, rank 3 (times × rows × cols) for
// image stacks.
func flatten(f geodata.Field) ([]uint, []float64) {
	switch f := f.(type) {
	case *geodata.ImageField:
		flat := make([]float64, 0, len(f.Frames)*f.Rows*f.Cols)
		for _, fr := range f.Frames {
			flat = append(flat, fr...)
		}

		return []uint{uint(len(f.Frames)), uint(f.Rows), uint(f.Cols)}, flat
	case *geodata.ScalarField:
		nt := f.NumTimes()
		flat := make([]float64, 0, len(f.Values)*nt)
		for _, row := range f.Values {
			flat = append(flat, row...)
		}

		return []uint{uint(len(f.Values)), uint(nt)}, flat
	default:
		// No other shapes exist; TimeStep gathering covers custom Fields.
		nt := f.NumTimes()
		spt := f.SamplesPerTime()
		flat := make([]float64, spt*nt)
		for t := 0; t < nt; t++ {
			for i, v := range f.TimeStep(t) {
				flat[i*nt+t] = v
			}
		}

		return []uint{uint(spt), uint(nt)}, flat
	}
}

func unflattenField(dims []uint, flat []float64) (geodata.Field, error) {
	switch len(dims) {
	case 2:
		return geodata.NewScalarField(unflatten2(flat, int(dims[0]), int(dims[1]))), nil
	case 3:
		rows, cols := int(dims[1]), int(dims[2])
		frames := make([][]float64, dims[0])
		for t := range frames {
			frames[t] = append([]float64(nil), flat[t*rows*cols:(t+1)*rows*cols]...)
		}

		return geodata.NewImageField(rows, cols, frames), nil
	default:
		return nil, fmt.Errorf("rank %d: %w", len(dims), ErrBadLayout)
	}
}

func unflatten2(flat []float64, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = append([]float64(nil), flat[i*cols:(i+1)*cols]...)
	}

	return out
}

func writeFloats(fg *hdf5.CommonFG, name string, dims []uint, flat []float64) error {
	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return fmt.Errorf("h5io: dataspace %s: %w", name, err)
	}
	defer space.Close()

	dset, err := fg.CreateDataset(name, hdf5.T_NATIVE_DOUBLE, space)
	if err != nil {
		return fmt.Errorf("h5io: create %s: %w", name, err)
	}
	defer dset.Close()

	if err := dset.Write(&flat); err != nil {
		return fmt.Errorf("h5io: write %s: %w", name, err)
	}

	return nil
}

func readFloats(fg *hdf5.CommonFG, name string) ([]uint, []float64, error) {
	dset, err := fg.OpenDataset(name)
	if err != nil {
		return nil, nil, fmt.Errorf("h5io: open %s: %w", name, err)
	}
	defer dset.Close()

	space := dset.Space()
	defer space.Close()

	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, nil, fmt.Errorf("h5io: shape of %s: %w", name, err)
	}

	n := 1
	for _, d := range dims {
		n *= int(d)
	}
	flat := make([]float64, n)
	if err := dset.Read(&flat); err != nil {
		return nil, nil, fmt.Errorf("h5io: read %s: %w", name, err)
	}

	return dims, flat, nil
}

func writeString(fg *hdf5.CommonFG, name, value string) error {
	space, err := hdf5.CreateDataspace(hdf5.S_SCALAR)
	if err != nil {
		return fmt.Errorf("h5io: dataspace %s: %w", name, err)
	}
	defer space.Close()

	dset, err := fg.CreateDataset(name, hdf5.T_GO_STRING, space)
	if err != nil {
		return fmt.Errorf("h5io: create %s: %w", name, err)
	}
	defer dset.Close()

	if err := dset.Write(&value); err != nil {
		return fmt.Errorf("h5io: write %s: %w", name, err)
	}

	return nil
}

func readString(fg *hdf5.CommonFG, name string) (string, error) {
	dset, err := fg.OpenDataset(name)
	if err != nil {
		return "", fmt.Errorf("h5io: open %s: %w", name, err)
	}
	defer dset.Close()

	var value string
	if err := dset.Read(&value); err != nil {
		return "", fmt.Errorf("h5io: read %s: %w", name, err)
	}

	return value, nil
}
