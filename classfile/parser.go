package classfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/kn3ll/jui/errors"
)

const magic = 0xCAFEBABE

// Parse reads a .class binary from r.
func Parse(r io.Reader) (*ClassFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindInvalidData, err, "read class file")
	}
	return ParseBytes(data)
}

// ParseBytes parses a .class binary.
func ParseBytes(data []byte) (*ClassFile, error) {
	p := &parser{data: data}

	if m := p.u4(); m != magic {
		return nil, errors.ParseFailed("class file", fmt.Sprintf("bad magic 0x%08X", m))
	}

	cf := &ClassFile{}
	cf.MinorVersion = p.u2()
	cf.MajorVersion = p.u2()

	if err := p.constantPool(cf); err != nil {
		return nil, err
	}

	cf.AccessFlags = p.u2()
	cf.ThisClass = p.u2()
	cf.SuperClass = p.u2()

	ifaceCount := p.u2()
	cf.Interfaces = make([]uint16, 0, ifaceCount)
	for i := 0; i < int(ifaceCount); i++ {
		cf.Interfaces = append(cf.Interfaces, p.u2())
	}

	fieldCount := p.u2()
	for i := 0; i < int(fieldCount); i++ {
		flags := p.u2()
		name, dok := cf.utf8At(p.u2())
		desc, tok := cf.utf8At(p.u2())
		attrs, err := p.attributes(cf)
		if err != nil {
			return nil, err
		}
		if !dok || !tok {
			return nil, errors.ParseFailed("class file", "field with dangling name or descriptor index")
		}
		cf.Fields = append(cf.Fields, FieldInfo{
			AccessFlags: flags, Name: name, Descriptor: desc, Attributes: attrs,
		})
	}

	methodCount := p.u2()
	for i := 0; i < int(methodCount); i++ {
		flags := p.u2()
		name, dok := cf.utf8At(p.u2())
		desc, tok := cf.utf8At(p.u2())
		attrs, err := p.attributes(cf)
		if err != nil {
			return nil, err
		}
		if !dok || !tok {
			return nil, errors.ParseFailed("class file", "method with dangling name or descriptor index")
		}
		cf.Methods = append(cf.Methods, MethodInfo{
			AccessFlags: flags, Name: name, Descriptor: desc, Attributes: attrs,
		})
	}

	attrs, err := p.attributes(cf)
	if err != nil {
		return nil, err
	}
	cf.Attributes = attrs

	if p.err != nil {
		return nil, p.err
	}
	if cf.ClassName() == "" {
		return nil, errors.ParseFailed("class file", "this_class does not resolve to a class name")
	}
	return cf, nil
}

// parser is a cursor over the big-endian class file layout. The first
// read past the end latches err and subsequent reads return zeros.
type parser struct {
	err  error
	data []byte
	pos  int
}

func (p *parser) truncated() {
	if p.err == nil {
		p.err = errors.ParseFailed("class file", fmt.Sprintf("truncated at offset %d", p.pos))
	}
}

func (p *parser) u1() uint8 {
	if p.pos+1 > len(p.data) {
		p.truncated()
		return 0
	}
	v := p.data[p.pos]
	p.pos++
	return v
}

func (p *parser) u2() uint16 {
	if p.pos+2 > len(p.data) {
		p.truncated()
		return 0
	}
	v := binary.BigEndian.Uint16(p.data[p.pos:])
	p.pos += 2
	return v
}

func (p *parser) u4() uint32 {
	if p.pos+4 > len(p.data) {
		p.truncated()
		return 0
	}
	v := binary.BigEndian.Uint32(p.data[p.pos:])
	p.pos += 4
	return v
}

func (p *parser) u8() uint64 {
	if p.pos+8 > len(p.data) {
		p.truncated()
		return 0
	}
	v := binary.BigEndian.Uint64(p.data[p.pos:])
	p.pos += 8
	return v
}

func (p *parser) bytes(n int) []byte {
	if n < 0 || p.pos+n > len(p.data) {
		p.truncated()
		return nil
	}
	v := p.data[p.pos : p.pos+n]
	p.pos += n
	return v
}

func (p *parser) constantPool(cf *ClassFile) error {
	count := p.u2()
	if p.err != nil {
		return p.err
	}

	// Slot 0 is unused; long and double entries occupy two slots.
	cf.ConstantPool = make([]ConstantPoolEntry, count)
	for i := 1; i < int(count); i++ {
		tag := p.u1()
		if p.err != nil {
			return p.err
		}
		switch tag {
		case TagUtf8:
			length := p.u2()
			cf.ConstantPool[i] = &ConstantUtf8{Value: string(p.bytes(int(length)))}
		case TagInteger:
			cf.ConstantPool[i] = &ConstantInteger{Value: int32(p.u4())}
		case TagFloat:
			cf.ConstantPool[i] = &ConstantFloat{Value: math.Float32frombits(p.u4())}
		case TagLong:
			cf.ConstantPool[i] = &ConstantLong{Value: int64(p.u8())}
			i++
		case TagDouble:
			cf.ConstantPool[i] = &ConstantDouble{Value: math.Float64frombits(p.u8())}
			i++
		case TagClass:
			cf.ConstantPool[i] = &ConstantClass{NameIndex: p.u2()}
		case TagString:
			cf.ConstantPool[i] = &ConstantString{StringIndex: p.u2()}
		case TagFieldref:
			cf.ConstantPool[i] = &ConstantFieldref{ClassIndex: p.u2(), NameAndTypeIndex: p.u2()}
		case TagMethodref:
			cf.ConstantPool[i] = &ConstantMethodref{ClassIndex: p.u2(), NameAndTypeIndex: p.u2()}
		case TagInterfaceMethodref:
			cf.ConstantPool[i] = &ConstantInterfaceMethodref{ClassIndex: p.u2(), NameAndTypeIndex: p.u2()}
		case TagNameAndType:
			cf.ConstantPool[i] = &ConstantNameAndType{NameIndex: p.u2(), DescriptorIndex: p.u2()}
		case TagMethodHandle:
			cf.ConstantPool[i] = &ConstantMethodHandle{ReferenceKind: p.u1(), ReferenceIndex: p.u2()}
		case TagMethodType:
			cf.ConstantPool[i] = &ConstantMethodType{DescriptorIndex: p.u2()}
		case TagInvokeDynamic:
			cf.ConstantPool[i] = &ConstantInvokeDynamic{BootstrapMethodAttrIndex: p.u2(), NameAndTypeIndex: p.u2()}
		default:
			return errors.ParseFailed("class file", fmt.Sprintf("unknown constant pool tag %d at entry %d", tag, i))
		}
		if p.err != nil {
			return p.err
		}
	}
	return nil
}

func (p *parser) attributes(cf *ClassFile) ([]AttributeInfo, error) {
	count := p.u2()
	if p.err != nil {
		return nil, p.err
	}
	attrs := make([]AttributeInfo, 0, count)
	for i := 0; i < int(count); i++ {
		nameIndex := p.u2()
		length := p.u4()
		data := p.bytes(int(length))
		if p.err != nil {
			return nil, p.err
		}
		name, ok := cf.utf8At(nameIndex)
		if !ok {
			return nil, errors.ParseFailed("class file", "attribute with dangling name index")
		}
		attrs = append(attrs, AttributeInfo{Name: name, Data: data})
	}
	return attrs, nil
}
