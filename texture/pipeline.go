package texture

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mantaforge/buildtool/assetcache"
	"github.com/mantaforge/buildtool/atlas"
	"github.com/mantaforge/buildtool/buffer"
	"github.com/mantaforge/buildtool/diag"
	"github.com/mantaforge/buildtool/internal/fsutil"
	"github.com/mantaforge/buildtool/internal/hashutil"
	"github.com/mantaforge/buildtool/internal/imageutil"
	"github.com/mantaforge/buildtool/pixelformat"
)

// cachedRecord is the on-disk shape stored in the asset cache for one
// texture.
type cachedRecord struct {
	Width, Height, Channels int
	Levels                  uint16
	Offset, Size            uint64
}

// cachedGlyph and cachedAtlas extend cachedRecord for atlas textures:
// placements and UVs are part of the cached result, so a cache hit
// can splice the packed pixels from the previous blob and rebuild the
// glyph table without re-decoding or re-packing any member image.
type cachedGlyph struct {
	CacheKey         uint64
	Width, Height    int
	AtlasX1, AtlasY1 int
	AtlasX2, AtlasY2 int
	U1, V1, U2, V2   uint16
}

type cachedAtlas struct {
	Record cachedRecord
	Glyphs []cachedGlyph
}

// Pipeline gathers, builds, and caches every .texture asset for one
// build invocation. PrevBlobPath, if non-empty, is the binary blob
// written by the previous successful build; cache hits splice their
// pixel range from it instead of re-decoding the source image.
type Pipeline struct {
	Cache        *assetcache.Cache
	Blob         *buffer.Buffer
	PrevBlobPath string
	AssetsRoot   string
}

// Build discovers every *.texture file under p.AssetsRoot, builds or
// reuses each one, and returns the resulting Texture list sorted by
// name for deterministic codegen.
func (p *Pipeline) Build() ([]*Texture, error) {
	files, err := fsutil.DirectoryIterate(p.AssetsRoot, "texture", true)
	if err != nil {
		return nil, fmt.Errorf("texture: gather: %w", err)
	}

	// Group definitions by atlas name; an empty group name means a
	// standalone texture. Grouping lets several .texture files share
	// one packed atlas while the on-disk JSON shape stays {path,mips}
	// for the common standalone case.
	standalone := make([]fsutil.FileInfo, 0, len(files))
	groups := make(map[string][]fsutil.FileInfo)
	for _, fi := range files {
		def, err := ParseDefinition(fi.AbsPath)
		if err != nil {
			return nil, err
		}
		if def.Atlas == "" {
			standalone = append(standalone, fi)
		} else {
			groups[def.Atlas] = append(groups[def.Atlas], fi)
		}
	}

	var out []*Texture
	for _, fi := range standalone {
		tex, err := p.buildStandalone(fi)
		if err != nil {
			return nil, err
		}
		out = append(out, tex)
	}

	groupNames := make([]string, 0, len(groups))
	for name := range groups {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)
	for _, name := range groupNames {
		tex, err := p.buildAtlas(name, groups[name])
		if err != nil {
			return nil, err
		}
		out = append(out, tex)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (p *Pipeline) name(fi fsutil.FileInfo) string {
	base := filepath.Base(fi.Path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// cacheKeyFor computes mix(defFileHash, imageFileHash).
func cacheKeyFor(defBytes []byte, imageBytes []byte) (assetcache.Key, uint64) {
	defHash := hashutil.HashBytes64(defBytes)
	imgHash := hashutil.HashBytes64(imageBytes)
	mixed := hashutil.Mix64(defHash, imgHash)
	// The key is itself content-derived, so re-using it as the stored
	// fingerprint is sufficient to detect any input change.
	return assetcache.Key(mixed), mixed
}

func (p *Pipeline) buildStandalone(fi fsutil.FileInfo) (*Texture, error) {
	def, err := ParseDefinition(fi.AbsPath)
	if err != nil {
		return nil, err
	}
	imagePath := filepath.Join(filepath.Dir(fi.AbsPath), def.Path)

	defBytes, imgBytes, err := readBoth(fi.AbsPath, imagePath)
	if err != nil {
		return nil, err
	}
	key, fingerprint := cacheKeyFor(defBytes, imgBytes)

	name := p.name(fi)
	tex := &Texture{Name: name, AtlasTexture: false, GenerateMips: def.Mips}

	var rec cachedRecord
	if assetcache.Fetch(p.Cache, key, fingerprint, &rec) && p.PrevBlobPath != "" {
		offset := p.Blob.WriteFromFile(p.PrevBlobPath, int64(rec.Offset), int(rec.Size))
		if offset != buffer.FailedOffset {
			diag.Logger().Debug("texture: cache hit", "name", name, "size", rec.Size)
			tex.Width, tex.Height, tex.Levels = rec.Width, rec.Height, rec.Levels
			tex.Offset, tex.Size = offset, int(rec.Size)
			glyph := &Glyph{TexturePath: imagePath, Width: rec.Width, Height: rec.Height}
			glyph.ImageX2, glyph.ImageY2 = rec.Width, rec.Height
			tex.Glyphs = []*Glyph{glyph}
			tex.GlyphCacheKey = []uint64{uint64(key)}
			return tex, nil
		}
	}

	img, err := imageutil.Load(imagePath)
	if err != nil {
		return nil, err
	}

	var pixels []byte
	var levels uint16
	if def.Mips {
		levels = pixelformat.LevelCount2D(img.Width, img.Height)
		chain, size := pixelformat.GenerateChain2DAlloc(img.Pixels, img.Width, img.Height, Format)
		if chain == nil {
			return nil, fmt.Errorf("texture: %s: mip chain generation failed for %dx%d", fi.Path, img.Width, img.Height)
		}
		pixels = chain[:size]
	} else {
		levels = 1
		pixels = img.Pixels
	}

	offset := p.Blob.Write(pixels)
	diag.Logger().Debug("texture: built standalone", "name", name, "width", img.Width, "height", img.Height, "levels", levels)
	tex.Width, tex.Height, tex.Levels = img.Width, img.Height, levels
	tex.Offset, tex.Size = offset, len(pixels)
	glyph := &Glyph{TexturePath: imagePath, Width: img.Width, Height: img.Height, Buffer: img.Pixels}
	glyph.ImageX2, glyph.ImageY2 = img.Width, img.Height
	tex.Glyphs = []*Glyph{glyph}
	tex.GlyphCacheKey = []uint64{uint64(key)}

	if err := assetcache.Store(p.Cache, key, fingerprint, cachedRecord{
		Width: img.Width, Height: img.Height, Channels: img.Channels,
		Levels: levels, Offset: offset, Size: uint64(len(pixels)),
	}); err != nil {
		return nil, err
	}
	return tex, nil
}

// buildAtlas packs every member of group into one shared atlas texture
// using the guillotine packer (atlas package), splicing each glyph's
// decoded subregion into the atlas pixel buffer.
func (p *Pipeline) buildAtlas(name string, group []fsutil.FileInfo) (*Texture, error) {
	type member struct {
		fi  fsutil.FileInfo
		img *imageutil.Decoded
		key assetcache.Key
	}

	// First pass hashes every member's inputs without decoding, so a
	// fully unchanged group can take the splice path below.
	type input struct {
		fi        fsutil.FileInfo
		def       *Definition
		imagePath string
		key       assetcache.Key
		fp        uint64
	}
	inputs := make([]input, 0, len(group))
	groupFp := hashutil.HashString64(name)
	for _, fi := range group {
		def, err := ParseDefinition(fi.AbsPath)
		if err != nil {
			return nil, err
		}
		imagePath := filepath.Join(filepath.Dir(fi.AbsPath), def.Path)
		defBytes, imgBytes, err := readBoth(fi.AbsPath, imagePath)
		if err != nil {
			return nil, err
		}
		key, fp := cacheKeyFor(defBytes, imgBytes)
		inputs = append(inputs, input{fi: fi, def: def, imagePath: imagePath, key: key, fp: fp})
		groupFp = hashutil.Mix64(groupFp, fp)
	}
	groupKey := assetcache.Key(hashutil.Mix64(hashutil.HashString64(name), groupFp))

	var rec cachedAtlas
	if assetcache.Fetch(p.Cache, groupKey, groupFp, &rec) && p.PrevBlobPath != "" && len(rec.Glyphs) == len(inputs) {
		offset := p.Blob.WriteFromFile(p.PrevBlobPath, int64(rec.Record.Offset), int(rec.Record.Size))
		if offset != buffer.FailedOffset {
			glyphs := make([]*Glyph, len(rec.Glyphs))
			glyphKeys := make([]uint64, len(rec.Glyphs))
			for i, cg := range rec.Glyphs {
				glyphs[i] = &Glyph{
					CacheKey: cg.CacheKey, TexturePath: inputs[i].imagePath,
					ImageX2: cg.Width, ImageY2: cg.Height,
					AtlasX1: cg.AtlasX1, AtlasY1: cg.AtlasY1, AtlasX2: cg.AtlasX2, AtlasY2: cg.AtlasY2,
					U1: cg.U1, V1: cg.V1, U2: cg.U2, V2: cg.V2,
					Width: cg.Width, Height: cg.Height,
				}
				glyphKeys[i] = cg.CacheKey
			}
			return &Texture{
				Name: name, AtlasTexture: true,
				Glyphs: glyphs, GlyphCacheKey: glyphKeys,
				Width: rec.Record.Width, Height: rec.Record.Height, Levels: rec.Record.Levels,
				Offset: offset, Size: int(rec.Record.Size),
			}, nil
		}
	}

	members := make([]member, 0, len(inputs))
	rects := make([]atlas.Rect, 0, len(inputs))
	for i, in := range inputs {
		img, err := imageutil.Load(in.imagePath)
		if err != nil {
			return nil, err
		}
		members = append(members, member{fi: in.fi, img: img, key: in.key})
		rects = append(rects, atlas.Rect{Index: i, W: img.Width, H: img.Height})
	}

	packer := atlas.New()
	size, placements, ok := packer.Pack(rects)
	if !ok {
		return nil, fmt.Errorf("texture: atlas %q: %d glyphs do not fit within %d", name, len(rects), atlas.MaxSize)
	}
	diag.Logger().Debug("texture: packed atlas", "name", name, "size", size, "glyphs", len(rects))

	const channels = 4
	atlasPixels := make([]byte, size*size*channels)
	glyphs := make([]*Glyph, len(members))
	glyphKeys := make([]uint64, len(members))

	for _, pl := range placements {
		m := members[pl.Index]
		for y := 0; y < m.img.Height; y++ {
			srcOff := y * m.img.Width * channels
			dstOff := ((pl.Y1+y)*size + pl.X1) * channels
			copy(atlasPixels[dstOff:dstOff+m.img.Width*channels], m.img.Pixels[srcOff:srcOff+m.img.Width*channels])
		}
		g := &Glyph{
			CacheKey: uint64(m.key), TexturePath: inputs[pl.Index].imagePath,
			ImageX2: m.img.Width, ImageY2: m.img.Height,
			AtlasX1: pl.X1, AtlasY1: pl.Y1, AtlasX2: pl.X2, AtlasY2: pl.Y2,
			U1: atlas.UV16(pl.X1, size), V1: atlas.UV16(pl.Y1, size),
			U2: atlas.UV16(pl.X2, size), V2: atlas.UV16(pl.Y2, size),
			Width: m.img.Width, Height: m.img.Height,
		}
		glyphs[pl.Index] = g
		glyphKeys[pl.Index] = uint64(m.key)
	}

	offset := p.Blob.Write(atlasPixels)
	tex := &Texture{
		Name: name, AtlasTexture: true, GenerateMips: false,
		Glyphs: glyphs, GlyphCacheKey: glyphKeys,
		Width: size, Height: size, Levels: 1,
		Offset: offset, Size: len(atlasPixels),
	}

	store := cachedAtlas{
		Record: cachedRecord{
			Width: size, Height: size, Channels: channels,
			Levels: 1, Offset: offset, Size: uint64(len(atlasPixels)),
		},
		Glyphs: make([]cachedGlyph, len(glyphs)),
	}
	for i, g := range glyphs {
		store.Glyphs[i] = cachedGlyph{
			CacheKey: g.CacheKey, Width: g.Width, Height: g.Height,
			AtlasX1: g.AtlasX1, AtlasY1: g.AtlasY1, AtlasX2: g.AtlasX2, AtlasY2: g.AtlasY2,
			U1: g.U1, V1: g.V1, U2: g.U2, V2: g.V2,
		}
	}
	if err := assetcache.Store(p.Cache, groupKey, groupFp, store); err != nil {
		return nil, err
	}
	return tex, nil
}

func readBoth(a, b string) ([]byte, []byte, error) {
	ab, err := readFile(a)
	if err != nil {
		return nil, nil, err
	}
	bb, err := readFile(b)
	if err != nil {
		return nil, nil, err
	}
	return ab, bb, nil
}
